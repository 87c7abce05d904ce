// Package serial turns free-text device serial submissions into canonical
// lowercase hexadecimal tokens.
package serial

import (
	"regexp"
	"strings"
)

var (
	// hexOnly matches a string made up entirely of hexadecimal digits.
	hexOnly = regexp.MustCompile(`^[a-fA-F0-9]+$`)

	// hexRun matches a maximal run of hexadecimal digits.
	hexRun = regexp.MustCompile(`[a-fA-F0-9]+`)
)

// Normalize returns the canonical token for a raw submitted value.
//
// Dots are dropped first, so "AB.CD.12" becomes "abcd12". When anything
// other than hex digits remains, every hex run of the original value is
// concatenated in order instead: "12-ab-34" becomes "12ab34". The boolean is
// false when the value contains no hex digits at all.
func Normalize(raw string) (string, bool) {
	clean := strings.ReplaceAll(raw, ".", "")
	if hexOnly.MatchString(clean) {
		return strings.ToLower(clean), true
	}

	runs := hexRun.FindAllString(raw, -1)
	if len(runs) == 0 {
		return "", false
	}
	return strings.ToLower(strings.Join(runs, "")), true
}

// IsToken reports whether s is already a canonical token: non-empty and made
// only of lowercase hexadecimal digits.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
