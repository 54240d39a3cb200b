package app

import "github.com/joshjon/kit/errtag"

// UsageError tags errors caused by invalid arguments or configuration. The
// CLI exits with status 2 for these.
type UsageError struct{ errtag.InvalidArgument }

func (UsageError) Msg() string { return "Invalid arguments" }

func (e UsageError) Unwrap() error {
	return errtag.Tag[errtag.InvalidArgument](e.Cause())
}
