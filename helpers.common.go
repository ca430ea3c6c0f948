package main

import (
	"os"
	"strings"
)

// NormalizeTitle returns the key used to compare titles.
func NormalizeTitle(title string) string {
	return strings.ToLower(title)
}

// isBlank reports whether s holds nothing but whitespace.
func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsAppRunningInDocker checks the existence of the .dockerenv
// file at the root directory and returns a boolean result. This
// helps know if the App is running in a docker container or not.
func IsAppRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}
