package valgoutil

import (
	"strconv"
	"strings"

	"github.com/cohesivestack/valgo"
)

// IntStringValidator checks that raw is a base-10 integer that fits in
// bitSize bits.
func IntStringValidator(raw string, bitSize int, nameAndTitle ...string) valgo.Validator {
	return valgo.String(raw, nameAndTitle...).Passing(func(s string) bool {
		_, err := strconv.ParseInt(s, 10, bitSize)
		return err == nil
	}, "{{title}} must be an integer")
}

func OneOfValidator(value string, allowed []string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(value, nameAndTitle...).InSlice(allowed, "{{title}} must be one of ["+strings.Join(allowed, ", ")+"]")
}
