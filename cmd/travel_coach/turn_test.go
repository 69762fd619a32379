package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/travel-coach/internal/types"
)

func TestDecodeTurnRequest_Valid(t *testing.T) {
	raw := []byte(`{
		"turns": [{"role": "user", "content": "캠핑으로 할래요"}],
		"params": {"max_chars": "2000", "length_style": "short"},
		"payload": {"summary_text": "요약"}
	}`)

	req, err := decodeTurnRequest(raw)
	require.NoError(t, err)
	assert.Len(t, req.Turns, 1)
	assert.Equal(t, "short", req.Params.LengthStyle)
	assert.Equal(t, "2000", req.Params.MaxChars)
}

func TestDecodeTurnRequest_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no turns", raw: `{"params": {}}`},
		{name: "unknown role", raw: `{"turns": [{"role": "bot", "content": "x"}]}`},
		{name: "unknown param", raw: `{"turns": [{"role": "user", "content": "x"}], "params": {"verbosity": 3}}`},
		{name: "not json", raw: `turns: []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTurnRequest([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestReadTurnInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"turns": []}`), 0o644))

	raw, err := readTurnInput(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"turns": []}`, string(raw))
}

func TestDecodeTurnRequest_ValidatorCatchesBadSegment(t *testing.T) {
	// The schema admits the enum too, but the struct validator must agree.
	req := &types.TurnRequest{
		Turns:  []types.Turn{{Role: types.RoleUser, Content: "x"}},
		Params: types.RawParams{Segment: "hiking"},
	}
	assert.Error(t, req.Validate())
}
