package payload

import (
	"encoding/json"
	"io"
	"testing"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	params, err := SendMessage(domain.Params{
		"chatId":           12345,
		"text":             "hello",
		"replyToMessageId": "7",
		"replyMarkup":      "inlineKeyboard",
		"inlineKeyboard": map[string]any{"rows": []any{
			map[string]any{"row": map[string]any{"buttons": []any{
				map[string]any{"text": "Go", "additionalFields": map[string]any{"callback_data": "go"}},
			}}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "12345", params.ChatID)
	assert.Equal(t, "hello", params.Text)
	require.NotNil(t, params.ReplyParameters)
	assert.Equal(t, 7, params.ReplyParameters.MessageID)

	kb, ok := params.ReplyMarkup.(*models.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "Go", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "go", kb.InlineKeyboard[0][0].CallbackData)
}

func TestSendMessage_NoMarkup(t *testing.T) {
	params, err := SendMessage(domain.Params{"chatId": "1", "text": "x", "replyMarkup": "none"})
	require.NoError(t, err)
	assert.Nil(t, params.ReplyMarkup)
	assert.Nil(t, params.ReplyParameters)

	_, err = SendMessage(domain.Params{"chatId": "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestEditMessageText(t *testing.T) {
	tests := []struct {
		name       string
		params     domain.Params
		wantInline bool
		wantErr    bool
	}{
		{
			name: "inline message ignores chat addressing",
			params: domain.Params{
				"messageType":     "inlineMessage",
				"inlineMessageId": "abc",
				"chatId":          "1",
				"messageId":       2,
				"text":            "t",
			},
			wantInline: true,
		},
		{
			name: "chat message ignores inline id",
			params: domain.Params{
				"messageType":     "message",
				"inlineMessageId": "abc",
				"chatId":          "1",
				"messageId":       2,
				"text":            "t",
			},
		},
		{
			name:    "inline message without id",
			params:  domain.Params{"messageType": "inlineMessage", "text": "t"},
			wantErr: true,
		},
		{
			name:    "chat message without message id",
			params:  domain.Params{"messageType": "message", "chatId": "1", "text": "t"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := EditMessageText(tc.params)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInline, req.IsInline())

			raw, err := json.Marshal(req)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))

			if tc.wantInline {
				assert.Equal(t, "abc", body["inline_message_id"])
				assert.NotContains(t, body, "chat_id")
				assert.NotContains(t, body, "message_id")
			} else {
				assert.NotContains(t, body, "inline_message_id")
				assert.Equal(t, "1", body["chat_id"])
				assert.Equal(t, float64(2), body["message_id"])

				params, err := req.Params()
				require.NoError(t, err)
				assert.Empty(t, params.InlineMessageID)
			}
		})
	}
}

func TestFlattenMediaItems(t *testing.T) {
	original := map[string]any{"caption": "second", "parse_mode": "Markdown"}
	p := domain.Params{"media": map[string]any{"media": []any{
		map[string]any{"type": "photo", "media": "a"},
		map[string]any{"type": "video", "media": "b", "additionalFields": original},
	}}}

	items, err := FlattenMediaItems(p)
	require.NoError(t, err)

	assert.Equal(t, []map[string]any{
		{"type": "photo", "media": "a"},
		{"type": "video", "media": "b", "caption": "second", "parse_mode": "Markdown"},
	}, items)
	for _, item := range items {
		assert.NotContains(t, item, "additionalFields")
	}

	src := p["media"].(map[string]any)["media"].([]any)[1].(map[string]any)
	assert.Contains(t, src, "additionalFields")
}

func TestSendMediaGroup(t *testing.T) {
	params, err := SendMediaGroup(domain.Params{
		"chatId": "9",
		"media": map[string]any{"media": []any{
			map[string]any{"type": "photo", "media": "a", "additionalFields": map[string]any{"caption": "cap"}},
			map[string]any{"type": "video", "media": "b"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, params.Media, 2)

	photo, ok := params.Media[0].(*models.InputMediaPhoto)
	require.True(t, ok)
	assert.Equal(t, "a", photo.Media)
	assert.Equal(t, "cap", photo.Caption)

	_, ok = params.Media[1].(*models.InputMediaVideo)
	assert.True(t, ok)

	_, err = SendMediaGroup(domain.Params{
		"chatId": "9",
		"media":  map[string]any{"media": []any{map[string]any{"type": "sticker", "media": "s"}}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestInputFile(t *testing.T) {
	item := domain.Item{Binary: map[string]domain.BinaryData{
		"data":  {Data: []byte("pdf"), FileName: "report.pdf"},
		"other": {Data: []byte("x")},
	}}

	t.Run("file id", func(t *testing.T) {
		f, err := InputFile(domain.Params{"fileId": "F"}, item)
		require.NoError(t, err)
		assert.Equal(t, &models.InputFileString{Data: "F"}, f)
	})

	t.Run("binary upload", func(t *testing.T) {
		f, err := InputFile(domain.Params{"binaryData": true}, item)
		require.NoError(t, err)

		upload, ok := f.(*models.InputFileUpload)
		require.True(t, ok)
		assert.Equal(t, "report.pdf", upload.Filename)
		data, err := io.ReadAll(upload.Data)
		require.NoError(t, err)
		assert.Equal(t, []byte("pdf"), data)
	})

	t.Run("named property without file name", func(t *testing.T) {
		f, err := InputFile(domain.Params{"binaryData": true, "binaryPropertyName": "other"}, item)
		require.NoError(t, err)
		assert.Equal(t, "other", f.(*models.InputFileUpload).Filename)
	})

	t.Run("missing attachment", func(t *testing.T) {
		_, err := InputFile(domain.Params{"binaryData": true, "binaryPropertyName": "photo"}, item)

		var missing *domain.MissingAttachmentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "photo", missing.Property)
	})

	t.Run("no file id", func(t *testing.T) {
		_, err := InputFile(domain.Params{}, item)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})
}

func TestSendContact(t *testing.T) {
	req, err := SendContact(domain.Params{
		"chatId":       "12",
		"phone_number": "+989123456789",
		"first_name":   "A",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"chat_id":"12","phone_number":"+989123456789","first_name":"A"}`, string(raw))

	req, err = SendContact(domain.Params{
		"chatId":           "12",
		"phone_number":     "+98",
		"first_name":       "A",
		"last_name":        "B",
		"replyToMessageId": 4,
	})
	require.NoError(t, err)

	raw, err = json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"chat_id":"12","phone_number":"+98","first_name":"A","last_name":"B","reply_to_message_id":4}`, string(raw))
}
