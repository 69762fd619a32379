package router

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pitchmate/travel-coach/internal/llm"
	"github.com/pitchmate/travel-coach/internal/prompts"
	"github.com/pitchmate/travel-coach/internal/types"
)

// classifierMaxTokens keeps the answer to the single-key JSON object.
const classifierMaxTokens = 16

// classifyZeroShot makes one bounded classifier call and parses the first
// brace-delimited JSON object for a "segment" key. Every failure mode
// (error, timeout, malformed or out-of-label answer) degrades to
// SegmentNone; nothing propagates.
func classifyZeroShot(ctx context.Context, client llm.Client, msg, hist string, timeout time.Duration) types.Segment {
	if timeout <= 0 {
		timeout = llm.DefaultConfig().Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := prompts.Format(prompts.MustGet("classifier_user"), map[string]string{
		"MaxTurns": strconv.Itoa(MaxHistoryTurns),
		"History":  hist,
		"Message":  msg,
	})

	resp, err := client.Classify(ctx, llm.ClassifyRequest{
		Prompt:      prompt,
		System:      prompts.MustGet("classifier_system"),
		Temperature: 0.0,
		MaxTokens:   classifierMaxTokens,
	})
	if err != nil {
		return types.SegmentNone
	}

	raw := llm.FirstJSONObject(resp)
	if raw == "" {
		return types.SegmentNone
	}

	var answer struct {
		Segment string `json:"segment"`
	}
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return types.SegmentNone
	}

	seg, ok := types.ParseSegment(strings.ToLower(strings.TrimSpace(answer.Segment)))
	if !ok {
		return types.SegmentNone
	}
	return seg
}
