// Package script implements the scripted interview: an ordered catalog of
// question slots grouped into four sections and a pure state machine that
// advances through them.
package script

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pitchmate/travel-coach/internal/types"
)

//go:embed catalog.yaml
var catalogFile []byte

// Slot is one identified question in the scripted interview.
type Slot struct {
	ID      string
	Section string
	// Ordinal is the slot's position within its section.
	Ordinal int
}

type catalogData struct {
	Sections      map[string][]string `yaml:"sections"`
	Questions     map[string]string   `yaml:"questions"`
	SegmentLabels map[string]string   `yaml:"segment_labels"`
	JumpKeywords  map[string][]string `yaml:"jump_keywords"`
}

var (
	catalogOnce sync.Once
	catalog     catalogData
	slotIndex   map[string]Slot
)

func load() catalogData {
	catalogOnce.Do(func() {
		if err := yaml.Unmarshal(catalogFile, &catalog); err != nil {
			panic(fmt.Sprintf("script: embedded catalog.yaml is invalid: %v", err))
		}
		slotIndex = make(map[string]Slot)
		for _, section := range types.SectionFlow {
			order := catalog.Sections[section]
			if len(order) == 0 {
				panic(fmt.Sprintf("script: catalog.yaml has no slots for section %s", section))
			}
			for i, id := range order {
				if _, ok := catalog.Questions[id]; !ok {
					panic(fmt.Sprintf("script: catalog.yaml slot %s has no question entry", id))
				}
				slotIndex[id] = Slot{ID: id, Section: section, Ordinal: i}
			}
		}
	})
	return catalog
}

// SectionOrder returns the slot ids of a section in ask order.
func SectionOrder(section string) []string {
	return load().Sections[section]
}

// LookupSlot returns the slot for an id.
func LookupSlot(id string) (Slot, bool) {
	load()
	s, ok := slotIndex[id]
	return s, ok
}

// TotalSlots returns the number of slots across all sections.
func TotalSlots() int {
	load()
	return len(slotIndex)
}

// JumpKeywords returns the jump-ahead keyword list for a slot. Most slots
// have none.
func JumpKeywords(slotID string) []string {
	return load().JumpKeywords[slotID]
}

// SegmentLabel returns the human label used in segment-parameterized
// question text.
func SegmentLabel(seg types.Segment) string {
	labels := load().SegmentLabels
	if label, ok := labels[string(seg)]; ok && seg != types.SegmentNone {
		return label
	}
	return labels["default"]
}

// marketSizeSlot is the only slot with segment-parameterized question text.
const marketSizeSlot = "C4_market_size"

// QuestionText renders the question for a slot, substituting the segment
// label for the market-size slot. Returns "" for unknown slots.
func QuestionText(slotID string, seg types.Segment) string {
	if slotID == marketSizeSlot {
		return fmt.Sprintf("%s 시장 규모와 최근 성장 추세에 대해 알고 있나요?", SegmentLabel(seg))
	}
	return load().Questions[slotID]
}
