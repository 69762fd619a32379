package types

// Section labels for the scripted interview, in visit order.
const (
	SectionA = "A"
	SectionB = "B"
	SectionC = "C"
	SectionD = "D"
)

// SectionFlow is the roll-over order between interview sections.
var SectionFlow = []string{SectionA, SectionB, SectionC, SectionD}

// Progress is the caller-owned cursor into the scripted interview.
// The engine accepts and returns it but stores nothing between turns.
type Progress struct {
	Section  string   `json:"section"`
	Index    int      `json:"index"`
	Answered []string `json:"answered"`
}

// FirstProgress returns the interview starting position: section A, index 0,
// nothing answered.
func FirstProgress() *Progress {
	return &Progress{Section: SectionA, Index: 0, Answered: []string{}}
}

// HasAnswered reports whether the slot has already been answered.
func (p *Progress) HasAnswered(slotID string) bool {
	for _, id := range p.Answered {
		if id == slotID {
			return true
		}
	}
	return false
}

// MarkAnswered records a slot as answered. Duplicate marks are ignored.
func (p *Progress) MarkAnswered(slotID string) {
	if !p.HasAnswered(slotID) {
		p.Answered = append(p.Answered, slotID)
	}
}

// Clone returns a deep copy so callers can hold the previous snapshot.
func (p *Progress) Clone() *Progress {
	if p == nil {
		return nil
	}
	answered := make([]string, len(p.Answered))
	copy(answered, p.Answered)
	return &Progress{Section: p.Section, Index: p.Index, Answered: answered}
}
