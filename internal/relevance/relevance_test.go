package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnrelated_ShortInput(t *testing.T) {
	cases := []struct {
		name string
		msg  string
	}{
		{"empty", ""},
		{"single character", "a"},
		{"single hangul", "캠"},
		{"whitespace only", "   "},
		{"padded single char", "  a  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, IsUnrelated(tc.msg))
		})
	}
}

func TestIsUnrelated_NoAlphanumeric(t *testing.T) {
	cases := []struct {
		name string
		msg  string
	}{
		{"punctuation", "?!?!"},
		{"symbols", "★☆★☆"},
		{"emoji", "🙂🙂🙂"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, IsUnrelated(tc.msg))
		})
	}
}

func TestIsUnrelated_RelatedInput(t *testing.T) {
	cases := []struct {
		name string
		msg  string
	}{
		{"korean", "캠핑으로 할래요"},
		{"english", "camping startup"},
		{"digits", "24시간 대여"},
		{"mixed with symbols", "!! 캠핑 !!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsUnrelated(tc.msg))
		})
	}
}
