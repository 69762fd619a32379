package lengthctl

import (
	"strings"

	"github.com/pitchmate/travel-coach/internal/tokenizer"
)

// EnforceTokenCap caps text at maxTokens tokens using the given codec. When
// decoding the truncated units fails, textual units are rejoined with
// spaces; as a last resort the cap is approximated as four characters per
// token.
func EnforceTokenCap(text string, maxTokens int, codec tokenizer.Codec) string {
	if maxTokens <= 0 {
		return text
	}
	if codec == nil {
		codec = tokenizer.Default()
	}
	units := codec.Encode(text)
	if len(units) <= maxTokens {
		return text
	}
	head := units[:maxTokens]
	if out, err := codec.Decode(head); err == nil {
		return out
	}
	if len(head) > 0 && head[0].Text != "" {
		parts := make([]string, len(head))
		for i, u := range head {
			parts[i] = u.Text
		}
		return strings.Join(parts, " ")
	}
	runes := []rune(text)
	if n := maxTokens * 4; n < len(runes) {
		return string(runes[:n])
	}
	return text
}
