package util

import "os"

// EnvOrNotSet returns the raw value of the variable or "NOT SET".
func EnvOrNotSet(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "NOT SET"
	}
	return v
}

// Mask hides everything past the first 8 characters of a secret.
func Mask(value string) string {
	if len(value) > 8 {
		return value[:8] + "..."
	}
	return "***"
}
