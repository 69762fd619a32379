// Package llm - util.go provides shared utilities for classifier response processing.
package llm

import "strings"

// FirstJSONObject returns the first brace-delimited substring of text,
// spanning from the first '{' to the last '}'. Classifier answers are tiny
// single-key objects, so no stricter grammar is applied; if the model's
// prose happens to contain braces first, the match starts there.
// Returns "" when no balanced pair exists.
func FirstJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return ""
	}
	return text[start : end+1]
}
