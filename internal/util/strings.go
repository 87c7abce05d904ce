package util

import "strings"

// NormalizeKey folds a user-typed config key to its canonical form:
// trimmed, lowercase, with underscores read as dashes ("Log_Level" is
// "log-level").
func NormalizeKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
