package store

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey turns a student name or identifier into its store key:
// NFC-composed, lower case, trimmed, inner whitespace collapsed.
func NormalizeKey(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
