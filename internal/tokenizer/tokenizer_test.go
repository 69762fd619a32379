package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprox_EncodeDecodeRoundTrip(t *testing.T) {
	c := Approx{}

	units := c.Encode("캠핑 장비 예약 서비스")
	require.Len(t, units, 4)

	out, err := c.Decode(units)
	require.NoError(t, err)
	assert.Equal(t, "캠핑 장비 예약 서비스", out)
}

func TestApprox_EncodeCollapsesWhitespace(t *testing.T) {
	c := Approx{}

	units := c.Encode("  one \t two\nthree ")

	require.Len(t, units, 3)
	out, err := c.Decode(units)
	require.NoError(t, err)
	assert.Equal(t, "one two three", out)
}

func TestApprox_EncodeEmpty(t *testing.T) {
	c := Approx{}
	assert.Empty(t, c.Encode(""))
	assert.Empty(t, c.Encode("   "))
}

func TestApprox_DecodeRejectsIDOnlyUnits(t *testing.T) {
	c := Approx{}

	_, err := c.Decode([]Unit{{ID: 42}})

	assert.Error(t, err)
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Equal(t, Default(), Default())
}
