// Package textnorm provides the shared text normalization applied before
// every keyword comparison in the conversation core.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// stripped is the punctuation class removed during normalization.
const stripped = "\"'`.,:;()[]{}<>~^-_/\\"

// Normalize canonicalizes text for keyword matching: NFKC fold, lowercase,
// punctuation stripped to spaces, whitespace collapsed.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(stripped, r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Contains reports whether the normalized keyword occurs as a substring of
// the normalized text. Empty inputs never match.
func Contains(text, keyword string) bool {
	if text == "" || keyword == "" {
		return false
	}
	kw := Normalize(keyword)
	if kw == "" {
		return false
	}
	return strings.Contains(Normalize(text), kw)
}

// CountHits returns how many of the keywords occur in the text.
func CountHits(text string, keywords []string) int {
	if text == "" {
		return 0
	}
	t := Normalize(text)
	hits := 0
	for _, kw := range keywords {
		k := Normalize(kw)
		if k != "" && strings.Contains(t, k) {
			hits++
		}
	}
	return hits
}
