// Package types provides type definitions for structured data shared across the travel-coach conversation core.
package types

// Segment is a sub-category of the travel/leisure domain.
type Segment string

// Supported segments. SegmentNone means no segment could be resolved.
const (
	SegmentCamping    Segment = "camping"
	SegmentExperience Segment = "experience"
	SegmentSports     Segment = "sports"
	SegmentNone       Segment = ""
)

// Segments returns all resolvable segments in tie-break priority order.
func Segments() []Segment {
	return []Segment{SegmentCamping, SegmentExperience, SegmentSports}
}

// ParseSegment returns the segment matching s, or SegmentNone and false
// when s is not a valid segment label.
func ParseSegment(s string) (Segment, bool) {
	switch Segment(s) {
	case SegmentCamping, SegmentExperience, SegmentSports:
		return Segment(s), true
	}
	return SegmentNone, false
}

// Via records which decision path produced a domain result.
type Via string

// Decision provenance tags.
const (
	ViaParam     Via = "param"
	ViaRule      Via = "rule"
	ViaZeroShot  Via = "zero-shot"
	ViaDefault   Via = "default"
	ViaUnrelated Via = "unrelated"
	ViaExplicit  Via = "explicit"
)

// The router serves a single fixed flow: every on-topic turn is routed to
// the scripted Q&A step inside the travel domain.
const (
	IntentScriptQnA = "script_qna"
	DomainTravel    = "travel"
)

// DomainDecision is the router's verdict for one user turn.
type DomainDecision struct {
	Intent       string  `json:"intent"`
	Domain       string  `json:"domain"`
	Segment      Segment `json:"segment,omitempty"`
	Confidence   float64 `json:"confidence"`
	Via          Via     `json:"via"`
	IsOnTopic    bool    `json:"isOnTopic"`
	OnTopicScore float64 `json:"onTopicScore"`
}

// RelevanceResult is the relevance filter's verdict for one user turn.
type RelevanceResult struct {
	Related bool `json:"related"`
}
