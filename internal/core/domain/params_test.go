package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_ItemParams(t *testing.T) {
	b := &Batch{
		Parameters: map[string]any{"chatId": "1", "text": "default"},
		Items: []Item{
			{Parameters: map[string]any{"text": "own"}},
			{},
		},
	}

	first := b.ItemParams(0)
	assert.Equal(t, Params{"chatId": "1", "text": "own"}, first)

	first["chatId"] = "changed"
	assert.Equal(t, Params{"chatId": "1", "text": "default"}, b.ItemParams(1))
	assert.Equal(t, "1", b.Parameters["chatId"])
}

func TestParams_Decode(t *testing.T) {
	type input struct {
		ChatID    string   `param:"chatId"`
		MessageID int      `param:"messageId"`
		Silent    bool     `param:"disable_notification"`
		Emoji     []string `param:"emojiList"`
	}

	t.Run("weakly typed", func(t *testing.T) {
		var in input
		err := Params{
			"chatId":               int64(-1001),
			"messageId":            "42",
			"disable_notification": "true",
			"emojiList":            "😀,🎉",
		}.Decode(&in, "chatId")
		require.NoError(t, err)

		assert.Equal(t, input{ChatID: "-1001", MessageID: 42, Silent: true, Emoji: []string{"😀", "🎉"}}, in)
	})

	t.Run("missing required", func(t *testing.T) {
		var in input
		err := Params{"messageId": 1}.Decode(&in, "chatId")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "chatId", verr.Param)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		var in input
		err := Params{"chatId": nil}.Decode(&in, "chatId")
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("unconvertible value", func(t *testing.T) {
		var in input
		err := Params{"chatId": "1", "messageId": "abc"}.Decode(&in)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestParams_Map(t *testing.T) {
	m, err := Params{}.Map("additionalFields")
	require.NoError(t, err)
	assert.Empty(t, m)

	m, err = Params{"additionalFields": `{"text":"hi"}`}.Map("additionalFields")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "hi"}, m)

	_, err = Params{"additionalFields": 12}.Map("additionalFields")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestActions(t *testing.T) {
	seen := map[Action]bool{}
	for _, a := range Actions() {
		assert.False(t, seen[a], "duplicate %s", a)
		seen[a] = true
		assert.True(t, a.IsKnown())
	}

	assert.False(t, Action{Resource: ResourceMessage, Operation: "sendPoll"}.IsKnown())
	assert.Equal(t, "chat:banChatMember", Action{Resource: ResourceChat, Operation: OpBanChatMember}.String())
}
