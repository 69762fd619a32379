package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get("classifier_system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "camping, experience, sports, none")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get("nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent-key")
	})
}

func TestFormat(t *testing.T) {
	template := "History (last {{.MaxTurns}} turns):\n{{.History}}\n\nUSER: {{.Message}}"
	result := Format(template, map[string]string{
		"MaxTurns": "3",
		"History":  "user: 안녕",
		"Message":  "캠핑으로 할래요",
	})

	assert.Contains(t, result, "last 3 turns")
	assert.Contains(t, result, "USER: 캠핑으로 할래요")
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestGet_Stable(t *testing.T) {
	prompt1, err := Get("classifier_system")
	require.NoError(t, err)
	prompt2, err := Get("classifier_system")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
