// Package pipeline provides the high-level orchestration for a single
// conversation turn: relevance, routing, the interview script and length
// governance, in that order.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchmate/travel-coach/internal/config"
	"github.com/pitchmate/travel-coach/internal/lengthctl"
	"github.com/pitchmate/travel-coach/internal/llm"
	"github.com/pitchmate/travel-coach/internal/logging"
	"github.com/pitchmate/travel-coach/internal/relevance"
	"github.com/pitchmate/travel-coach/internal/router"
	"github.com/pitchmate/travel-coach/internal/script"
	"github.com/pitchmate/travel-coach/internal/tokenizer"
	"github.com/pitchmate/travel-coach/internal/types"
)

// Stage names, in execution order.
const (
	StageRelevance = "relevance"
	StageRouter    = "router"
	StageScript    = "script"
	StageLength    = "length_control"
)

// Stages lists the turn stages in order; ProgressEvent.Step carries one of
// these names.
var Stages = []string{StageRelevance, StageRouter, StageScript, StageLength}

// ProgressEvent represents a progress update during turn execution.
type ProgressEvent struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Content   any    `json:"content,omitempty"`
}

// ProgressCallback is called as each stage completes.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running a turn.
type RunOptions struct {
	Client          llm.Client
	AllowZeroShot   bool
	ClassifyTimeout time.Duration
	LengthStyle     string
	MaxChars        int
	MaxTokens       int
	Codec           tokenizer.Codec
	Logger          *logging.Logger
	OnProgress      ProgressCallback
}

func emitProgress(opts *RunOptions, conv *types.ConversationContext, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:      step,
			Message:   message,
			RequestID: conv.RequestID.String(),
			Content:   content,
		})
	}
}

// BuildParams converts the loosely-typed wire parameters into the typed
// per-request bag, applying option defaults for anything the caller left
// unset.
func BuildParams(raw types.RawParams, opts RunOptions) types.Params {
	params := types.Params{
		Segment:       raw.Segment,
		RoutedStep:    raw.RoutedStep,
		AllowZeroShot: raw.AllowZeroShot || opts.AllowZeroShot,
		Progress:      raw.Progress.Clone(),
		LastSlot:      raw.LastSlot,
		LengthStyle:   raw.LengthStyle,
		MaxChars:      config.CoercePositive(raw.MaxChars, opts.MaxChars),
		MaxTokens:     config.CoercePositive(raw.MaxTokens, opts.MaxTokens),
	}
	if params.LengthStyle == "" {
		params.LengthStyle = opts.LengthStyle
	}
	return params
}

// RunTurn executes one full conversation turn. The request must already be
// validated; the returned context carries every stage output plus the
// governed payload.
func RunTurn(ctx context.Context, req *types.TurnRequest, opts RunOptions) (*types.ConversationContext, error) {
	if ctx == nil {
		return nil, fmt.Errorf("nil context")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	conv := types.NewConversationContext(req.Turns, BuildParams(req.Params, opts))
	conv.Payload = req.Payload
	log = log.With("request_id", conv.RequestID.String())

	userText := conv.LastUserText()

	// 1) Relevance filter.
	conv.Relevance = &types.RelevanceResult{Related: !relevance.IsUnrelated(userText)}
	log.Debug("relevance resolved", "related", conv.Relevance.Related)
	emitProgress(&opts, conv, StageRelevance, "relevance resolved", conv.Relevance)

	// 2) Domain and segment routing.
	conv.Domain = router.Decide(ctx, conv, router.Options{
		Client:  opts.Client,
		Timeout: opts.ClassifyTimeout,
	})
	log.Debug("domain decided",
		"segment", conv.Domain.Segment,
		"confidence", conv.Domain.Confidence,
		"via", conv.Domain.Via,
		"on_topic", conv.Domain.IsOnTopic,
	)
	emitProgress(&opts, conv, StageRouter, "domain decided", conv.Domain)

	// 3) Interview script.
	conv.Script = script.ProcessTurn(conv)
	log.Debug("script advanced",
		"mode", conv.Script.Mode,
		"slot", conv.Script.SlotKey,
		"section", conv.Script.Section,
	)
	emitProgress(&opts, conv, StageScript, "script advanced", conv.Script)

	// 4) Length governance over the outgoing payload.
	style := lengthctl.Style(conv.Params.LengthStyle)
	if _, ok := lengthctl.PresetFor(style); !ok {
		style = lengthctl.DecideStyle(userText)
	}
	conv.Params.LengthStyle = string(style)
	if conv.Payload != nil {
		conv.Payload = lengthctl.TrimPayload(
			conv.Payload, style, conv.Params.MaxChars, conv.Params.MaxTokens, opts.Codec)
	}
	log.Debug("length governed", "style", style, "max_chars", conv.Params.MaxChars)
	emitProgress(&opts, conv, StageLength, "length governed", conv.Payload)

	return conv, nil
}
