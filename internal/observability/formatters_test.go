package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchmate/travel-coach/internal/types"
)

func TestPrintDomainDecision(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDomainDecision(&types.DomainDecision{
		Intent:       types.IntentScriptQnA,
		Domain:       types.DomainTravel,
		Segment:      types.SegmentCamping,
		Confidence:   0.90,
		Via:          types.ViaRule,
		IsOnTopic:    true,
		OnTopicScore: 0.40,
	})
	output := buf.String()

	assert.Contains(t, output, "DOMAIN DECISION")
	assert.Contains(t, output, "camping")
	assert.Contains(t, output, "0.90")
	assert.Contains(t, output, "via rule")
}

func TestPrintDomainDecision_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDomainDecision(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScriptOutput_Ask(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScriptOutput(&types.ScriptOutput{
		Mode:     types.ModeAsk,
		Question: "당신이 주목한 문제나 새로운 기회는 무엇인가요?",
		SlotKey:  "A1_problem",
		Section:  types.SectionA,
		Progress: &types.Progress{Section: types.SectionA, Answered: []string{}},
	})
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW SCRIPT")
	assert.Contains(t, output, "A1_problem")
	assert.Contains(t, output, "Answered: 0 slot(s)")
}

func TestPrintScriptOutput_Notice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScriptOutput(&types.ScriptOutput{
		Mode:    types.ModeNotice,
		Message: "여행·레저 창업 관련 질문을 해주세요.",
	})

	assert.Contains(t, buf.String(), "notice")
}

func TestPrintPayload(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPayload(map[string]any{"one_liner": "한 줄 소개"})
	output := buf.String()

	assert.Contains(t, output, "GOVERNED PAYLOAD")
	assert.Contains(t, output, "one_liner")
}

func TestPrintPayload_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPayload(nil)

	assert.Empty(t, buf.String())
}
