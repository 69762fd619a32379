// Package relevance flags trivially unrelated user input before any
// routing work is spent on it.
package relevance

import (
	"strings"
)

// MinMessageLen is the minimum trimmed length for a message to be
// considered worth routing.
const MinMessageLen = 2

// IsUnrelated reports whether the message is too short or contains no
// Latin or Hangul alphanumeric character. Pure function of the message.
func IsUnrelated(msg string) bool {
	if len([]rune(strings.TrimSpace(msg))) < MinMessageLen {
		return true
	}
	return !strings.ContainsFunc(msg, isLatinOrHangulAlnum)
}

// isLatinOrHangulAlnum covers ASCII letters, digits and composed Hangul
// syllables. Bare jamo and symbol-only input do not count.
func isLatinOrHangulAlnum(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= '가' && r <= '힣':
		return true
	}
	return false
}
