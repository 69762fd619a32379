package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "camping in jeju", Normalize("  \"Camping\", (in) Jeju.  "))
}

func TestNormalize_KeepsExclamation(t *testing.T) {
	// "!" is not in the stripped punctuation class.
	assert.Equal(t, "캠핑 가자!", Normalize("캠핑 가자!"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "글램핑 체험 예약", Normalize("글램핑   체험\t예약"))
}

func TestNormalize_NFKCFold(t *testing.T) {
	// Fullwidth latin folds to ASCII under NFKC.
	assert.Equal(t, "camp", Normalize("ｃａｍｐ"))
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "Guided-Tour: 현지 투어 (서울)"
	assert.Equal(t, Normalize(in), Normalize(in))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("주말에 오토캠핑 가요", "캠핑"))
	assert.True(t, Contains("Booking a GUIDED-TOUR", "guided tour"))
	assert.False(t, Contains("주식 시세", "캠핑"))
	assert.False(t, Contains("", "캠핑"))
	assert.False(t, Contains("캠핑", ""))
}

func TestCountHits(t *testing.T) {
	kws := []string{"캠핑", "텐트", "글램핑"}

	assert.Equal(t, 2, CountHits("캠핑은 텐트가 필요해요", kws))
	assert.Equal(t, 0, CountHits("주식 얘기", kws))
	assert.Equal(t, 0, CountHits("", kws))
}
