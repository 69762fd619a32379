// Package router resolves a travel/leisure segment and an on-topic
// confidence score for each user turn. Deterministic keyword rules are
// preferred for cost and latency; the zero-shot classifier fallback is
// opt-in and attempted at most once per turn.
package router

import (
	"context"
	"math"
	"time"

	"github.com/pitchmate/travel-coach/internal/llm"
	"github.com/pitchmate/travel-coach/internal/textnorm"
	"github.com/pitchmate/travel-coach/internal/types"
)

// Hand-tuned routing constants. The tie-break order and the on-topic
// threshold have no documented derivation; do not "correct" them.
const (
	// OnTopicThreshold is the minimum on-topic score for a turn without a
	// resolved segment to still count as on-topic.
	OnTopicThreshold = 0.28
	// MaxHistoryTurns is how many turns of history the classifier sees.
	MaxHistoryTurns = 3

	// Confidence values per decision path.
	ConfParam     = 0.95
	ConfRule      = 0.90
	ConfZeroShot  = 0.65
	ConfDefault   = 0.50
	ConfUnrelated = 0.30

	// onTopicHitDivisor converts distinct hint hits into a [0,1] score.
	onTopicHitDivisor = 5.0
)

// ValidSteps are the routing labels a caller may supply explicitly. Only
// script_qna is implemented by this core; the rest are recognized so an
// explicit label still short-circuits routing.
var ValidSteps = []string{
	"script_qna", "ideate", "feedback_quick", "summary", "research", "revenue", "write",
}

// Options configures a routing decision.
type Options struct {
	// Client is the zero-shot classifier; consulted only when the caller
	// allows the fallback. May be nil.
	Client llm.Client
	// Timeout bounds the single classifier call. Zero means the client
	// config default applies.
	Timeout time.Duration
}

// RuleSegment resolves a segment from keyword-substring hits. The segment
// with the most hits wins; ties break camping > experience > sports.
// Returns SegmentNone when nothing scored.
func RuleSegment(msg string) types.Segment {
	best := types.SegmentNone
	bestHits := 0
	for _, seg := range types.Segments() {
		hits := textnorm.CountHits(msg, SegmentKeywords(seg))
		if hits > bestHits {
			best = seg
			bestHits = hits
		}
	}
	return best
}

// OnTopicScore estimates travel/leisure relevance in [0,1]: one point per
// distinct general hint matched, plus one if any segment keyword matched.
func OnTopicScore(msg string) float64 {
	hits := textnorm.CountHits(msg, OnTopicHints())
	for _, seg := range types.Segments() {
		if textnorm.CountHits(msg, SegmentKeywords(seg)) > 0 {
			hits++
			break
		}
	}
	return math.Min(float64(hits)/onTopicHitDivisor, 1.0)
}

// Decide produces the DomainDecision for the latest user turn. The
// relevance stage must have run already; a missing relevance result is
// treated as related.
func Decide(ctx context.Context, conv *types.ConversationContext, opts Options) *types.DomainDecision {
	// Explicit routing label short-circuits everything.
	if step := conv.Params.RoutedStep; step != "" && isValidStep(step) {
		return &types.DomainDecision{
			Intent:    step,
			Domain:    types.DomainTravel,
			Via:       types.ViaExplicit,
			IsOnTopic: true,
		}
	}

	msg := conv.LastUserText()

	related := true
	if conv.Relevance != nil {
		related = conv.Relevance.Related
	}
	if !related {
		return &types.DomainDecision{
			Intent:     types.IntentScriptQnA,
			Domain:     types.DomainTravel,
			Segment:    types.SegmentNone,
			Confidence: ConfUnrelated,
			Via:        types.ViaUnrelated,
			IsOnTopic:  false,
		}
	}

	// Resolution priority: param override, keyword rules, zero-shot
	// fallback, default.
	seg := types.SegmentNone
	via := types.Via("")
	conf := 0.0

	if s, ok := types.ParseSegment(conv.Params.Segment); ok {
		seg, via, conf = s, types.ViaParam, ConfParam
	}

	if seg == types.SegmentNone {
		if s := RuleSegment(msg); s != types.SegmentNone {
			seg, via, conf = s, types.ViaRule, ConfRule
		}
	}

	if seg == types.SegmentNone && conv.Params.AllowZeroShot && opts.Client != nil {
		hist := conv.ShortHistory(MaxHistoryTurns)
		if s := classifyZeroShot(ctx, opts.Client, msg, hist, opts.Timeout); s != types.SegmentNone {
			seg, via = s, types.ViaZeroShot
			conf = math.Max(conf, ConfZeroShot)
		}
	}

	if seg == types.SegmentNone {
		if via == "" {
			via = types.ViaDefault
		}
		conf = math.Max(conf, ConfDefault)
	}

	score := OnTopicScore(msg)
	onTopic := score >= OnTopicThreshold || seg != types.SegmentNone
	if !onTopic {
		via = types.ViaUnrelated
		conf = math.Min(conf, ConfUnrelated)
	}

	return &types.DomainDecision{
		Intent:       types.IntentScriptQnA,
		Domain:       types.DomainTravel,
		Segment:      seg,
		Confidence:   conf,
		Via:          via,
		IsOnTopic:    onTopic,
		OnTopicScore: math.Round(score*100) / 100,
	}
}

func isValidStep(step string) bool {
	for _, s := range ValidSteps {
		if s == step {
			return true
		}
	}
	return false
}
