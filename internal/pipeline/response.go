package pipeline

import (
	"github.com/pitchmate/travel-coach/internal/types"
)

// TurnResponse is the wire shape returned to the caller after a turn. Params
// holds everything the caller must resubmit next turn; the core itself keeps
// nothing.
type TurnResponse struct {
	RequestID string                 `json:"request_id"`
	Relevance *types.RelevanceResult `json:"relevance,omitempty"`
	Domain    *types.DomainDecision  `json:"domain,omitempty"`
	Script    *types.ScriptOutput    `json:"script,omitempty"`
	Payload   any                    `json:"payload,omitempty"`
	Params    types.RawParams        `json:"params"`
}

// BuildResponse assembles the response envelope for a completed turn.
func BuildResponse(conv *types.ConversationContext) *TurnResponse {
	next := types.RawParams{
		Segment:       conv.Params.Segment,
		RoutedStep:    conv.Params.RoutedStep,
		AllowZeroShot: conv.Params.AllowZeroShot,
		LengthStyle:   conv.Params.LengthStyle,
	}
	// A decided segment round-trips as the next turn's override so the
	// interview stays pinned once routing has resolved.
	if conv.Domain != nil && conv.Domain.Segment != types.SegmentNone {
		next.Segment = string(conv.Domain.Segment)
	}
	if conv.Params.MaxChars > 0 {
		next.MaxChars = conv.Params.MaxChars
	}
	if conv.Params.MaxTokens > 0 {
		next.MaxTokens = conv.Params.MaxTokens
	}
	if conv.Script != nil {
		next.Progress = conv.Script.Progress.Clone()
		next.LastSlot = conv.Script.SlotKey
	}
	if next.Progress == nil {
		next.Progress = conv.Params.Progress.Clone()
	}
	if next.LastSlot == "" {
		next.LastSlot = conv.Params.LastSlot
	}
	return &TurnResponse{
		RequestID: conv.RequestID.String(),
		Relevance: conv.Relevance,
		Domain:    conv.Domain,
		Script:    conv.Script,
		Payload:   conv.Payload,
		Params:    next,
	}
}
