package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchmate/travel-coach/internal/types"
)

func TestCatalog_SectionSizes(t *testing.T) {
	assert.Len(t, SectionOrder(types.SectionA), 4)
	assert.Len(t, SectionOrder(types.SectionB), 5)
	assert.Len(t, SectionOrder(types.SectionC), 7)
	assert.Len(t, SectionOrder(types.SectionD), 10)
	assert.Equal(t, 26, TotalSlots())
}

func TestLookupSlot(t *testing.T) {
	slot, ok := LookupSlot("C5_competitors")
	assert.True(t, ok)
	assert.Equal(t, types.SectionC, slot.Section)
	assert.Equal(t, 4, slot.Ordinal)

	_, ok = LookupSlot("Z9_unknown")
	assert.False(t, ok)
}

func TestQuestionText_Static(t *testing.T) {
	assert.Equal(t, "당신이 주목한 문제나 새로운 기회는 무엇인가요?", QuestionText("A1_problem", types.SegmentNone))
	// Static questions ignore the segment.
	assert.Equal(t, QuestionText("B2_value", types.SegmentCamping), QuestionText("B2_value", types.SegmentSports))
}

func TestQuestionText_MarketSizeParameterized(t *testing.T) {
	assert.Equal(t,
		"캠핑/글램핑 시장 규모와 최근 성장 추세에 대해 알고 있나요?",
		QuestionText("C4_market_size", types.SegmentCamping))
	assert.Equal(t,
		"여행·레저 시장 규모와 최근 성장 추세에 대해 알고 있나요?",
		QuestionText("C4_market_size", types.SegmentNone))
}

func TestQuestionText_UnknownSlot(t *testing.T) {
	assert.Equal(t, "", QuestionText("Z9_unknown", types.SegmentNone))
}

func TestJumpKeywords(t *testing.T) {
	assert.Contains(t, JumpKeywords("D1_revenue_sources"), "수익원")
	assert.Empty(t, JumpKeywords("A1_problem"))
}
