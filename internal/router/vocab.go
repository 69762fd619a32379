package router

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pitchmate/travel-coach/internal/types"
)

//go:embed vocab.yaml
var vocabFile []byte

// vocabulary is the external keyword table backing the rule-based router.
// Keeping it as data rather than inline literals lets the vocabulary be
// tuned and tested independently of the matching engine.
type vocabulary struct {
	Segments map[string][]string `yaml:"segments"`
	Hints    []string            `yaml:"hints"`
}

var (
	vocabOnce sync.Once
	vocab     vocabulary
)

func loadVocab() vocabulary {
	vocabOnce.Do(func() {
		if err := yaml.Unmarshal(vocabFile, &vocab); err != nil {
			panic(fmt.Sprintf("router: embedded vocab.yaml is invalid: %v", err))
		}
		for _, seg := range types.Segments() {
			if len(vocab.Segments[string(seg)]) == 0 {
				panic(fmt.Sprintf("router: vocab.yaml has no keywords for segment %q", seg))
			}
		}
	})
	return vocab
}

// SegmentKeywords returns the keyword list for a segment.
func SegmentKeywords(seg types.Segment) []string {
	return loadVocab().Segments[string(seg)]
}

// OnTopicHints returns the general travel/leisure hint terms.
func OnTopicHints() []string {
	return loadVocab().Hints
}
