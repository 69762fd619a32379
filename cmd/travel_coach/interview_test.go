package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/travel-coach/internal/types"
)

func TestInterviewLoop_AsksAndAdvances(t *testing.T) {
	input := strings.Join([]string{
		"캠핑장 창업을 해보고 싶어요",
		"주변에 제대로 된 캠핑장이 없다는 게 문제예요",
		"",
	}, "\n")
	var out bytes.Buffer

	err := interviewLoop(context.Background(), strings.NewReader(input), &out, types.RawParams{})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "[A1_problem]")
	assert.Contains(t, output, "[A2_pain]")
}

func TestInterviewLoop_OffTopicGetsNotice(t *testing.T) {
	var out bytes.Buffer

	err := interviewLoop(context.Background(), strings.NewReader("오늘 주식 시황 알려줘\n\n"), &out, types.RawParams{})
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "[A1_problem]")
}

func TestInterviewLoop_SegmentOverride(t *testing.T) {
	var out bytes.Buffer

	err := interviewLoop(context.Background(), strings.NewReader("뭐부터 시작할까요?\n\n"), &out,
		types.RawParams{Segment: "sports"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[A1_problem]")
}

func TestInterviewLoop_PrintsLengthDirective(t *testing.T) {
	var out bytes.Buffer

	err := interviewLoop(context.Background(), strings.NewReader("\n"), &out,
		types.RawParams{LengthStyle: "one_line"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "길이 지침")
	assert.Contains(t, out.String(), "50 tokens")
}
