package config

import (
	"strconv"
	"strings"
)

// ErrUnknownKey is returned when trying to access an unknown
// configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// Sections lists the valid configuration sections.
func Sections() []string {
	return []string{"project", "paths", "settings"}
}

// CoerceValue converts a raw string value to its stored type.
// Boolean-looking values (true/false, case-insensitive) become bools,
// all-digit values become ints, everything else stays a string.
func CoerceValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil && value != "" {
		allDigits := true
		for _, r := range value {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return n
		}
	}
	return value
}
