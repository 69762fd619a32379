// Package lengthctl governs the length and shape of outgoing response
// payloads: it resolves a target length style and recursively trims
// arbitrary nested payloads to character and token budgets while preserving
// sentence and word boundaries, fenced-code integrity and link integrity.
package lengthctl

import (
	"fmt"
	"strings"
)

// Style is a named length preset bounding output size.
type Style string

// Supported length styles.
const (
	StyleOneLine Style = "one_line"
	StyleShort   Style = "short"
	StyleMedium  Style = "medium"
	StyleLong    Style = "long"
)

// DefaultGlobalCap is the character cap applied when the caller supplies
// none (or a malformed one).
const DefaultGlobalCap = 4000

// Preset bundles the character and token budget of one style.
type Preset struct {
	Chars  int
	Tokens int
}

// presets maps each style to its budgets.
var presets = map[Style]Preset{
	StyleOneLine: {Chars: 140, Tokens: 50},
	StyleShort:   {Chars: 400, Tokens: 120},
	StyleMedium:  {Chars: 1200, Tokens: 300},
	StyleLong:    {Chars: 4000, Tokens: 1000},
}

// PresetFor returns the preset for a style and whether the style is known.
func PresetFor(style Style) (Preset, bool) {
	p, ok := presets[style]
	return p, ok
}

// styleHints are scanned in order; the first group with a hit wins.
var styleHints = []struct {
	style Style
	hints []string
}{
	{StyleOneLine, []string{"한줄", "한 줄", "슬로건", "엘리베이터", "한문장", "한 문장"}},
	{StyleShort, []string{"짧게", "간단히", "요약", "핵심만"}},
	{StyleMedium, []string{"보통", "중간", "적당히"}},
	{StyleLong, []string{"길게", "자세히", "상세히", "보고서", "전체 초안", "풀버전"}},
}

// DetectUserStyle returns the style the user asked for, or "" when the
// message carries no length hint.
func DetectUserStyle(userQuery string) Style {
	for _, group := range styleHints {
		for _, h := range group.hints {
			if strings.Contains(userQuery, h) {
				return group.style
			}
		}
	}
	return ""
}

// AutoClassifyStyle is the secondary keyword ladder used when no explicit
// hint matched: one-line beats brief beats long-form, defaulting to medium.
func AutoClassifyStyle(userQuery string) Style {
	for _, k := range []string{"슬로건", "한줄", "한 문장"} {
		if strings.Contains(userQuery, k) {
			return StyleOneLine
		}
	}
	for _, k := range []string{"요약", "핵심"} {
		if strings.Contains(userQuery, k) {
			return StyleShort
		}
	}
	for _, k := range []string{"전체", "초안", "보고서"} {
		if strings.Contains(userQuery, k) {
			return StyleLong
		}
	}
	return StyleMedium
}

// DecideStyle resolves the length style for a user message: an explicit
// hint wins, then the secondary ladder.
func DecideStyle(userQuery string) Style {
	if s := DetectUserStyle(userQuery); s != "" {
		return s
	}
	return AutoClassifyStyle(userQuery)
}

// Directive renders the prompt-side length instruction for a style and
// returns it with the style's token budget.
func Directive(style Style) (string, int) {
	preset, ok := PresetFor(style)
	if !ok {
		preset = presets[StyleMedium]
	}
	text := fmt.Sprintf(
		"Write with explicit length control:\n"+
			"- Target length: '%s'.\n"+
			"- Hard limits: ≤%d characters or the allowed token budget.\n"+
			"- Be concise. Avoid filler words.\n",
		style, preset.Chars,
	)
	return text, preset.Tokens
}
