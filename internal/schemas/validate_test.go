package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTurnRequest_Valid(t *testing.T) {
	doc := `{
		"turns": [{"role": "user", "content": "캠핑으로 할래요"}],
		"params": {
			"segment": "camping",
			"script_progress": {"section": "A", "index": 0, "answered": []},
			"last_slot": "A1_problem",
			"length_style": "short",
			"max_chars": "2000"
		},
		"payload": {"summary_text": "요약"}
	}`
	assert.NoError(t, ValidateTurnRequest(doc))
}

func TestValidateTurnRequest_MinimalValid(t *testing.T) {
	doc := `{"turns": [{"role": "user", "content": "hi"}]}`
	assert.NoError(t, ValidateTurnRequest(doc))
}

func TestValidateTurnRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing turns", doc: `{"params": {}}`},
		{name: "empty turns", doc: `{"turns": []}`},
		{name: "bad role", doc: `{"turns": [{"role": "bot", "content": "x"}]}`},
		{name: "bad segment", doc: `{"turns": [{"role": "user", "content": "x"}], "params": {"segment": "hiking"}}`},
		{name: "bad section", doc: `{"turns": [{"role": "user", "content": "x"}], "params": {"script_progress": {"section": "E", "index": 0}}}`},
		{name: "negative index", doc: `{"turns": [{"role": "user", "content": "x"}], "params": {"script_progress": {"section": "A", "index": -1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTurnRequest(tt.doc)
			require.Error(t, err)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateJSONString_SchemaLoadError(t *testing.T) {
	err := ValidateJSONString(`{"type": ["bogus-type"]}`, `{}`)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.True(t, errors.As(err, &sle))
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{{Field: "turns", Message: "is required"}}}
	assert.Contains(t, ve.Error(), "turns")
	assert.Contains(t, ve.Error(), "is required")
}
