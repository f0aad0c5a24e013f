// Package utils has small shared helpers for input validation.
package utils

import "unicode"

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// IsValidTrigger checks that a trigger token is non-empty and has no
// whitespace or control characters, both of which would make the
// backward scan ambiguous.
func IsValidTrigger(trigger string) bool {
	if trigger == "" {
		return false
	}
	for _, r := range trigger {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsPrintableInput checks that a line of user input carries no control
// characters (tabs are fine).
func IsPrintableInput(s string) bool {
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}
