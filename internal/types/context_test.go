package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationContext_LastUserText(t *testing.T) {
	ctx := NewConversationContext([]Turn{
		{Role: RoleUser, Content: "캠핑 창업을 준비 중이에요"},
		{Role: RoleAssistant, Content: "어떤 문제에 주목하셨나요?"},
		{Role: RoleUser, Content: "장비 대여가 너무 번거로워요"},
	}, Params{})

	assert.Equal(t, "장비 대여가 너무 번거로워요", ctx.LastUserText())
}

func TestConversationContext_LastUserText_NoUserTurn(t *testing.T) {
	ctx := NewConversationContext([]Turn{
		{Role: RoleAssistant, Content: "안녕하세요"},
	}, Params{})

	assert.Equal(t, "", ctx.LastUserText())
}

func TestConversationContext_ShortHistory_LimitsTurns(t *testing.T) {
	ctx := NewConversationContext([]Turn{
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "two"},
		{Role: RoleUser, Content: "three"},
		{Role: RoleAssistant, Content: "four"},
	}, Params{})

	hist := ctx.ShortHistory(2)

	assert.Equal(t, "user: three\nassistant: four", hist)
}

func TestNewConversationContext_AssignsRequestID(t *testing.T) {
	a := NewConversationContext(nil, Params{})
	b := NewConversationContext(nil, Params{})

	assert.NotEqual(t, a.RequestID, b.RequestID)
}
