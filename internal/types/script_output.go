package types

// ScriptMode identifies which of the three output shapes the script engine produced.
type ScriptMode string

// Script engine output modes.
const (
	// ModeNotice returns static off-topic guidance without touching progress.
	ModeNotice ScriptMode = "notice"
	// ModeAsk returns the next interview question plus the progress snapshot to echo back.
	ModeAsk ScriptMode = "ask"
	// ModeEnd reports that every section of the interview is exhausted.
	ModeEnd ScriptMode = "end"
)

// ScriptOutput is the script engine's result for one user turn.
type ScriptOutput struct {
	Mode     ScriptMode `json:"mode"`
	Message  string     `json:"message,omitempty"`
	Question string     `json:"question,omitempty"`
	SlotKey  string     `json:"slot_key,omitempty"`
	Section  string     `json:"section,omitempty"`
	Progress *Progress  `json:"progress,omitempty"`
}
