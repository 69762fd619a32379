package lengthctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideStyle_ExplicitHintWins(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Style
	}{
		{name: "one line hint", query: "슬로건처럼 한 줄로 뽑아줘", want: StyleOneLine},
		{name: "short hint", query: "핵심만 짧게 정리해줘", want: StyleShort},
		{name: "medium hint", query: "적당히 설명해줘", want: StyleMedium},
		{name: "long hint", query: "보고서 형태로 자세히 써줘", want: StyleLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideStyle(tt.query))
		})
	}
}

func TestDecideStyle_SecondaryLadder(t *testing.T) {
	// No explicit hint: the ladder prefers one-line over brief over long-form.
	assert.Equal(t, StyleShort, DecideStyle("핵심 위주로 정리 부탁해"))
	assert.Equal(t, StyleLong, DecideStyle("전체 내용을 부탁해"))
	assert.Equal(t, StyleMedium, DecideStyle("캠핑장 창업 어때?"))
}

func TestDetectUserStyle_NoHint(t *testing.T) {
	assert.Equal(t, Style(""), DetectUserStyle("안녕하세요"))
}

func TestPresetFor(t *testing.T) {
	p, ok := PresetFor(StyleOneLine)
	assert.True(t, ok)
	assert.Equal(t, 140, p.Chars)
	assert.Equal(t, 50, p.Tokens)

	_, ok = PresetFor(Style("epic"))
	assert.False(t, ok)
}

func TestDirective(t *testing.T) {
	text, tokens := Directive(StyleShort)
	assert.Contains(t, text, "'short'")
	assert.Contains(t, text, "400")
	assert.Equal(t, 120, tokens)

	// Unknown styles fall back to the medium budget.
	_, tokens = Directive(Style("epic"))
	assert.Equal(t, 300, tokens)
}
