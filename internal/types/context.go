package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Conversation turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single message in the conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Params is the per-request parameter bag supplied by the caller.
// Progress, LastSlot and LengthStyle are round-tripped between turns;
// the core persists nothing.
type Params struct {
	// Segment is an explicit segment override (camping/experience/sports).
	Segment string `json:"segment,omitempty"`
	// RoutedStep short-circuits routing when the caller already resolved it.
	RoutedStep string `json:"routed_step,omitempty"`
	// AllowZeroShot permits a single bounded classifier call when rules fail.
	AllowZeroShot bool `json:"allow_zero_shot,omitempty"`
	// Progress is the interview cursor resubmitted from the previous turn.
	Progress *Progress `json:"script_progress,omitempty"`
	// LastSlot is the slot id asked on the previous turn.
	LastSlot string `json:"last_slot,omitempty"`
	// LengthStyle forces a length preset (one_line/short/medium/long).
	LengthStyle string `json:"length_style,omitempty"`
	// MaxChars is the global character cap for the response payload.
	MaxChars int `json:"max_chars,omitempty"`
	// MaxTokens is the token cap merged with the style preset.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// ConversationContext is the request-scoped state shared by the pipeline
// stages. It is created per request, mutated in place by each stage and
// discarded after the response is produced.
type ConversationContext struct {
	RequestID uuid.UUID `json:"request_id"`
	Turns     []Turn    `json:"turns"`
	Params    Params    `json:"params"`

	// Stage outputs, filled in pipeline order.
	Relevance *RelevanceResult `json:"relevance,omitempty"`
	Domain    *DomainDecision  `json:"domain,omitempty"`
	Script    *ScriptOutput    `json:"script,omitempty"`
	Payload   any              `json:"payload,omitempty"`
}

// NewConversationContext builds a fresh per-request context.
func NewConversationContext(turns []Turn, params Params) *ConversationContext {
	return &ConversationContext{
		RequestID: uuid.New(),
		Turns:     turns,
		Params:    params,
	}
}

// LastUserText returns the content of the most recent user turn, or "".
func (c *ConversationContext) LastUserText() string {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleUser {
			return c.Turns[i].Content
		}
	}
	return ""
}

// ShortHistory renders the last k turns as "role: content" lines for
// classifier prompts.
func (c *ConversationContext) ShortHistory(k int) string {
	turns := c.Turns
	if k > 0 && len(turns) > k {
		turns = turns[len(turns)-k:]
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	return strings.Join(lines, "\n")
}
