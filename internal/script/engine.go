package script

import (
	"strings"

	"github.com/pitchmate/travel-coach/internal/textnorm"
	"github.com/pitchmate/travel-coach/internal/types"
)

// Static guidance returned outside the interview flow.
const (
	// NoticeMessage is returned for off-topic turns.
	NoticeMessage = "이 챗봇은 여행·레저(캠핑/체험/스포츠) 전용입니다. 원하는 세그먼트를 알려주세요. 예) \"캠핑으로 할래요\""
	// EndMessage is returned once every slot has been collected.
	EndMessage = "모든 핵심 질문을 수집했습니다. 원하시면 요약이나 사업계획서 초안을 생성해 드릴게요."
)

// Question is a resolved slot ready to ask.
type Question struct {
	ID   string
	Text string
}

// CurrentQuestion returns the question at the progress cursor, or nil when
// the cursor is out of range for its section (section exhausted).
func CurrentQuestion(p *types.Progress, seg types.Segment) *Question {
	if p == nil {
		return nil
	}
	order := SectionOrder(p.Section)
	if len(order) == 0 || p.Index < 0 || p.Index >= len(order) {
		return nil
	}
	id := order[p.Index]
	text := QuestionText(id, seg)
	if text == "" {
		return nil
	}
	return &Question{ID: id, Text: text}
}

// NextProgress advances the cursor linearly: next slot in the section, or
// the next section at index 0 carrying the answered set forward. Returns
// nil after section D is exhausted.
func NextProgress(p *types.Progress) *types.Progress {
	if p == nil {
		return nil
	}
	next := p.Clone()
	next.Index++
	if next.Index < len(SectionOrder(next.Section)) {
		return next
	}
	for i, section := range types.SectionFlow {
		if section == next.Section {
			if i+1 >= len(types.SectionFlow) {
				return nil
			}
			next.Section = types.SectionFlow[i+1]
			next.Index = 0
			return next
		}
	}
	return nil
}

// ChooseNextProgress picks the next cursor position given the user's latest
// answer: among unanswered slots strictly after the current index in the
// same section, jump to the one with the highest jump-keyword score. A zero
// top score, or no remaining slots, falls back to linear advance. Ties keep
// the earlier slot.
func ChooseNextProgress(p *types.Progress, userText string) *types.Progress {
	if p == nil {
		return nil
	}
	order := SectionOrder(p.Section)
	if len(order) == 0 {
		return NextProgress(p)
	}

	bestIdx := -1
	bestScore := 0
	for i := p.Index + 1; i < len(order); i++ {
		id := order[i]
		if p.HasAnswered(id) {
			continue
		}
		if score := scoreSlot(userText, id); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx >= 0 {
		next := p.Clone()
		next.Index = bestIdx
		return next
	}
	return NextProgress(p)
}

// scoreSlot counts jump-keyword matches of the slot against the user text.
func scoreSlot(userText, slotID string) int {
	if strings.TrimSpace(userText) == "" {
		return 0
	}
	return textnorm.CountHits(userText, JumpKeywords(slotID))
}

// ProcessTurn runs one interview step for the request context. It reads the
// domain decision and the round-tripped progress, records the answer to the
// previously asked slot, picks the next position and emits one of the three
// output modes. The engine itself stores nothing between calls.
func ProcessTurn(conv *types.ConversationContext) *types.ScriptOutput {
	onTopic := true
	seg := types.SegmentNone
	if conv.Domain != nil {
		onTopic = conv.Domain.IsOnTopic
		seg = conv.Domain.Segment
	}
	if seg == types.SegmentNone {
		if s, ok := types.ParseSegment(conv.Params.Segment); ok {
			seg = s
		}
	}

	if !onTopic {
		return &types.ScriptOutput{
			Mode:    types.ModeNotice,
			Message: NoticeMessage,
		}
	}

	progress := conv.Params.Progress.Clone()
	if progress == nil {
		progress = types.FirstProgress()
	}
	userText := strings.TrimSpace(conv.LastUserText())

	// Record the answer only when the caller echoes back the slot we asked
	// last turn and it is still the one under the cursor.
	asked := conv.Params.LastSlot
	if curr := CurrentQuestion(progress, seg); curr != nil && asked != "" && asked == curr.ID && userText != "" {
		progress.MarkAnswered(asked)
		if next := ChooseNextProgress(progress, userText); next != nil {
			progress = next
		} else {
			return &types.ScriptOutput{Mode: types.ModeEnd, Message: EndMessage}
		}
	}

	q := CurrentQuestion(progress, seg)
	if q == nil {
		return &types.ScriptOutput{Mode: types.ModeEnd, Message: EndMessage}
	}

	return &types.ScriptOutput{
		Mode:     types.ModeAsk,
		Question: q.Text,
		SlotKey:  q.ID,
		Section:  progress.Section,
		Progress: progress,
	}
}
