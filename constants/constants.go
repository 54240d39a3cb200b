// Package constants defines names shared by the CLI, its configuration and its
// logs.
package constants

const (
	AppName   = "domaingen"
	EnvPrefix = "DOMAINGEN_"
)

// EnvVar returns the environment variable name for a setting, e.g.
// EnvVar("LOG_LEVEL") is DOMAINGEN_LOG_LEVEL.
func EnvVar(name string) string {
	return EnvPrefix + name
}
