package lengthctl

import (
	"github.com/pitchmate/travel-coach/internal/tokenizer"
)

// defaultListEach and defaultListCount bound string lists whose key has no
// registered policy.
const (
	defaultListEach  = 250
	defaultListCount = 7
)

type trimOptions struct {
	styleChars int
	globalCap  int
	tokenCap   int
	codec      tokenizer.Codec
}

func trimText(key string, text string, o trimOptions) Text {
	policy := PolicyFor(key)
	txt := text
	if !policy.IsCode() && o.tokenCap > 0 {
		txt = EnforceTokenCap(txt, o.tokenCap, o.codec)
	}
	capChars := policy.MaxChars
	if capChars <= 0 {
		capChars = o.styleChars
	}
	if capChars <= 0 {
		capChars = o.globalCap
	}
	if capChars > o.globalCap {
		capChars = o.globalCap
	}
	return Text(EnforceCharCap(txt, capChars, policy.IsCode()))
}

func trimTextList(key string, items []string, o trimOptions) List {
	policy := PolicyFor(key)
	each := policy.MaxEach
	if each <= 0 {
		each = o.styleChars
	}
	if each <= 0 {
		each = defaultListEach
	}
	if each > defaultListEach {
		each = defaultListEach
	}
	cnt := policy.MaxCount
	if cnt <= 0 {
		cnt = defaultListCount
	}
	trimmed := EnforceBullets(items, each, cnt, policy.Tail)
	out := make(List, len(trimmed))
	for i, s := range trimmed {
		out[i] = Text(s)
	}
	return out
}

// trimNode is the structural recursion at the heart of the governor. key is
// the map key the node sits under, "" at the root and inside lists.
func trimNode(key string, n Node, o trimOptions) Node {
	switch t := n.(type) {
	case Text:
		return trimText(key, string(t), o)
	case List:
		if items, ok := textItems(t); ok {
			return trimTextList(key, items, o)
		}
		out := make(List, len(t))
		for i, x := range t {
			out[i] = trimNode(key, x, o)
		}
		return out
	case Map:
		out := make(Map, len(t))
		for k, v := range t {
			if SkipKey(k) {
				out[k] = v
			} else {
				out[k] = trimNode(k, v, o)
			}
		}
		return out
	default:
		return n
	}
}

// textItems unwraps a list when every element is a Text leaf.
func textItems(l List) ([]string, bool) {
	items := make([]string, len(l))
	for i, x := range l {
		s, ok := x.(Text)
		if !ok {
			return nil, false
		}
		items[i] = string(s)
	}
	return items, true
}

// TrimNode trims a Node tree under a style and explicit caps. maxChars <= 0
// falls back to DefaultGlobalCap; the token cap is the conservative min of
// the caller's cap and the style's budget.
func TrimNode(n Node, style Style, maxChars, maxTokens int, codec tokenizer.Codec) Node {
	opts := trimOptions{globalCap: maxChars, tokenCap: maxTokens, codec: codec}
	if opts.globalCap <= 0 {
		opts.globalCap = DefaultGlobalCap
	}
	if opts.tokenCap < 0 {
		opts.tokenCap = 0
	}
	if preset, ok := PresetFor(style); ok {
		opts.styleChars = preset.Chars
		if opts.tokenCap == 0 || preset.Tokens < opts.tokenCap {
			opts.tokenCap = preset.Tokens
		}
	}
	return trimNode("", n, opts)
}

// TrimPayload converts an arbitrary decoded payload to the Node variant,
// trims it, and converts it back.
func TrimPayload(payload any, style Style, maxChars, maxTokens int, codec tokenizer.Codec) any {
	return ToAny(TrimNode(FromAny(payload), style, maxChars, maxTokens, codec))
}
