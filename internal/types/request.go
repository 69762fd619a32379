package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RawParams is the wire shape of the per-turn parameter bag. Numeric caps
// are declared as any because hosting systems have been observed to send
// blanks, booleans and numeric strings; they are coerced downstream instead
// of rejected.
type RawParams struct {
	Segment       string    `json:"segment,omitempty" validate:"omitempty,oneof=camping experience sports"`
	RoutedStep    string    `json:"routed_step,omitempty"`
	AllowZeroShot bool      `json:"allow_zero_shot,omitempty"`
	Progress      *Progress `json:"script_progress,omitempty"`
	LastSlot      string    `json:"last_slot,omitempty"`
	LengthStyle   string    `json:"length_style,omitempty" validate:"omitempty,oneof=one_line short medium long"`
	MaxChars      any       `json:"max_chars,omitempty"`
	MaxTokens     any       `json:"max_tokens,omitempty"`
}

// TurnRequest is one full request to the conversation core: the turn
// history, the round-tripped parameters and the payload to govern.
type TurnRequest struct {
	Turns   []Turn    `json:"turns" validate:"required,min=1,dive"`
	Params  RawParams `json:"params"`
	Payload any       `json:"payload,omitempty"`
}

// Validate checks the request shape using the validator.
func (r *TurnRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid turn request: %w", err)
	}
	if r.Params.Progress != nil {
		switch r.Params.Progress.Section {
		case SectionA, SectionB, SectionC, SectionD:
		default:
			return fmt.Errorf("invalid turn request: unknown section %q", r.Params.Progress.Section)
		}
		if r.Params.Progress.Index < 0 {
			return fmt.Errorf("invalid turn request: negative progress index %d", r.Params.Progress.Index)
		}
	}
	return nil
}
