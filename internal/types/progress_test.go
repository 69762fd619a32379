package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstProgress(t *testing.T) {
	p := FirstProgress()

	assert.Equal(t, SectionA, p.Section)
	assert.Equal(t, 0, p.Index)
	assert.Empty(t, p.Answered)
	assert.NotNil(t, p.Answered)
}

func TestProgress_MarkAnswered_Deduplicates(t *testing.T) {
	p := FirstProgress()

	p.MarkAnswered("A1_problem")
	p.MarkAnswered("A1_problem")
	p.MarkAnswered("A2_pain")

	assert.Equal(t, []string{"A1_problem", "A2_pain"}, p.Answered)
	assert.True(t, p.HasAnswered("A1_problem"))
	assert.False(t, p.HasAnswered("A3_reason"))
}

func TestProgress_Clone_IsIndependent(t *testing.T) {
	p := &Progress{Section: SectionB, Index: 2, Answered: []string{"B1_core_service"}}

	clone := p.Clone()
	clone.MarkAnswered("B2_value")
	clone.Index = 3

	assert.Equal(t, 2, p.Index)
	assert.Equal(t, []string{"B1_core_service"}, p.Answered)
	assert.Equal(t, []string{"B1_core_service", "B2_value"}, clone.Answered)
}

func TestProgress_Clone_Nil(t *testing.T) {
	var p *Progress
	assert.Nil(t, p.Clone())
}
