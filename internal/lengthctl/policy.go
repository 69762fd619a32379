package lengthctl

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed policies.json
var policyData []byte

// FieldPolicy declares how a payload field is trimmed. Zero values mean
// "use the style or built-in default".
type FieldPolicy struct {
	Kind     string `json:"kind"`
	MaxChars int    `json:"max_chars"`
	MaxEach  int    `json:"max_each"`
	MaxCount int    `json:"max_count"`
	Tail     bool   `json:"tail"`
}

// IsCode reports whether the field carries code or JSON that must never be
// soft-cut or decorated with an ellipsis.
func (p FieldPolicy) IsCode() bool { return p.Kind == "code" }

// skipKeys are metadata fields that pass through trimming untouched.
var skipKeys = map[string]struct{}{
	"relevance": {},
	"faq":       {},
	"domain":    {},
}

var (
	policyOnce sync.Once
	policyMap  map[string]FieldPolicy
)

func loadPolicies() map[string]FieldPolicy {
	policyOnce.Do(func() {
		if err := json.Unmarshal(policyData, &policyMap); err != nil {
			panic(fmt.Sprintf("lengthctl: invalid embedded policy table: %v", err))
		}
	})
	return policyMap
}

// PolicyFor returns the trim policy registered for a field key. Unknown
// keys get the zero policy, which trims as plain text with style defaults.
func PolicyFor(key string) FieldPolicy {
	return loadPolicies()[key]
}

// SkipKey reports whether a field key is exempt from trimming.
func SkipKey(key string) bool {
	_, ok := skipKeys[key]
	return ok
}
