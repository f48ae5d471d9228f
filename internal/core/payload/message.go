package payload

import (
	"encoding/json"
	"fmt"
	"maps"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/cast"
)

type messageInput struct {
	ChatID              string `param:"chatId"`
	Text                string `param:"text"`
	ParseMode           string `param:"parse_mode"`
	DisableNotification bool   `param:"disable_notification"`
	ReplyToMessageID    int    `param:"replyToMessageId"`
}

func SendMessage(p domain.Params) (*bot.SendMessageParams, error) {
	var in messageInput
	if err := p.Decode(&in, "chatId", "text"); err != nil {
		return nil, err
	}

	markup, err := Markup(p)
	if err != nil {
		return nil, err
	}

	return &bot.SendMessageParams{
		ChatID:              in.ChatID,
		Text:                in.Text,
		ParseMode:           models.ParseMode(in.ParseMode),
		DisableNotification: in.DisableNotification,
		ReplyParameters:     replyParameters(in.ReplyToMessageID),
		ReplyMarkup:         markup,
	}, nil
}

const inlineMessageType = "inlineMessage"

type editInput struct {
	MessageType     string `param:"messageType"`
	InlineMessageID string `param:"inlineMessageId"`
	ChatID          string `param:"chatId"`
	MessageID       int    `param:"messageId"`
	Text            string `param:"text"`
	ParseMode       string `param:"parse_mode"`
}

// EditMessageTextRequest addresses either an inline message or a chat
// message, never both.
type EditMessageTextRequest struct {
	InlineMessageID string              `json:"inline_message_id,omitempty"`
	ChatID          string              `json:"chat_id,omitempty"`
	MessageID       int                 `json:"message_id,omitempty"`
	Text            string              `json:"text"`
	ParseMode       string              `json:"parse_mode,omitempty"`
	ReplyMarkup     *domain.ReplyMarkup `json:"reply_markup,omitempty"`
}

func (r *EditMessageTextRequest) IsInline() bool {
	return r.InlineMessageID != ""
}

// Params converts a chat message edit into the shared client's parameters.
func (r *EditMessageTextRequest) Params() (*bot.EditMessageTextParams, error) {
	markup, err := toModelsMarkup(r.ReplyMarkup)
	if err != nil {
		return nil, err
	}

	return &bot.EditMessageTextParams{
		ChatID:      r.ChatID,
		MessageID:   r.MessageID,
		Text:        r.Text,
		ParseMode:   models.ParseMode(r.ParseMode),
		ReplyMarkup: markup,
	}, nil
}

func EditMessageText(p domain.Params) (*EditMessageTextRequest, error) {
	var in editInput
	if err := p.Decode(&in, "text"); err != nil {
		return nil, err
	}

	req := &EditMessageTextRequest{
		Text:        in.Text,
		ParseMode:   in.ParseMode,
		ReplyMarkup: domain.BuildMarkup(p),
	}

	if in.MessageType == inlineMessageType {
		if in.InlineMessageID == "" {
			return nil, &domain.ValidationError{Param: "inlineMessageId", Err: errEmpty}
		}
		req.InlineMessageID = in.InlineMessageID
		return req, nil
	}

	if in.ChatID == "" {
		return nil, &domain.ValidationError{Param: "chatId", Err: errEmpty}
	}
	if in.MessageID == 0 {
		return nil, &domain.ValidationError{Param: "messageId", Err: errEmpty}
	}
	req.ChatID = in.ChatID
	req.MessageID = in.MessageID

	return req, nil
}

type messageRefInput struct {
	ChatID     string `param:"chatId"`
	FromChatID string `param:"fromChatId"`
	MessageID  int    `param:"messageId"`
}

func DeleteMessage(p domain.Params) (*bot.DeleteMessageParams, error) {
	var in messageRefInput
	if err := p.Decode(&in, "chatId", "messageId"); err != nil {
		return nil, err
	}

	return &bot.DeleteMessageParams{ChatID: in.ChatID, MessageID: in.MessageID}, nil
}

func CopyMessage(p domain.Params) (*bot.CopyMessageParams, error) {
	var in messageRefInput
	if err := p.Decode(&in, "chatId", "fromChatId", "messageId"); err != nil {
		return nil, err
	}

	return &bot.CopyMessageParams{
		ChatID:     in.ChatID,
		FromChatID: in.FromChatID,
		MessageID:  in.MessageID,
	}, nil
}

func ForwardMessage(p domain.Params) (*bot.ForwardMessageParams, error) {
	var in messageRefInput
	if err := p.Decode(&in, "chatId", "fromChatId", "messageId"); err != nil {
		return nil, err
	}

	return &bot.ForwardMessageParams{
		ChatID:     in.ChatID,
		FromChatID: in.FromChatID,
		MessageID:  in.MessageID,
	}, nil
}

type mediaInput struct {
	ChatID           string `param:"chatId"`
	Caption          string `param:"caption"`
	ParseMode        string `param:"parse_mode"`
	ReplyToMessageID int    `param:"replyToMessageId"`
}

// singleMedia holds what every single-file send operation shares.
type singleMedia struct {
	mediaInput
	file   models.InputFile
	markup models.ReplyMarkup
}

func decodeMedia(p domain.Params, item domain.Item) (*singleMedia, error) {
	var in mediaInput
	if err := p.Decode(&in, "chatId"); err != nil {
		return nil, err
	}

	file, err := InputFile(p, item)
	if err != nil {
		return nil, err
	}

	markup, err := Markup(p)
	if err != nil {
		return nil, err
	}

	return &singleMedia{mediaInput: in, file: file, markup: markup}, nil
}

func SendDocument(p domain.Params, item domain.Item) (*bot.SendDocumentParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendDocumentParams{
		ChatID:          m.ChatID,
		Document:        m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

func SendPhoto(p domain.Params, item domain.Item) (*bot.SendPhotoParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendPhotoParams{
		ChatID:          m.ChatID,
		Photo:           m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

func SendAudio(p domain.Params, item domain.Item) (*bot.SendAudioParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendAudioParams{
		ChatID:          m.ChatID,
		Audio:           m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

func SendVoice(p domain.Params, item domain.Item) (*bot.SendVoiceParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendVoiceParams{
		ChatID:          m.ChatID,
		Voice:           m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

func SendVideo(p domain.Params, item domain.Item) (*bot.SendVideoParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendVideoParams{
		ChatID:          m.ChatID,
		Video:           m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

func SendAnimation(p domain.Params, item domain.Item) (*bot.SendAnimationParams, error) {
	m, err := decodeMedia(p, item)
	if err != nil {
		return nil, err
	}

	return &bot.SendAnimationParams{
		ChatID:          m.ChatID,
		Animation:       m.file,
		Caption:         m.Caption,
		ParseMode:       models.ParseMode(m.ParseMode),
		ReplyParameters: replyParameters(m.ReplyToMessageID),
		ReplyMarkup:     m.markup,
	}, nil
}

type stickerInput struct {
	ChatID           string `param:"chatId"`
	StickerID        string `param:"stickerId"`
	ReplyToMessageID int    `param:"replyToMessageId"`
}

func SendSticker(p domain.Params) (*bot.SendStickerParams, error) {
	var in stickerInput
	if err := p.Decode(&in, "chatId", "stickerId"); err != nil {
		return nil, err
	}

	return &bot.SendStickerParams{
		ChatID:          in.ChatID,
		Sticker:         &models.InputFileString{Data: in.StickerID},
		ReplyParameters: replyParameters(in.ReplyToMessageID),
	}, nil
}

// FlattenMediaItems reads the media group description and hoists each item's
// additionalFields into the item itself. Item keys are copied, the input is
// left untouched.
func FlattenMediaItems(p domain.Params) ([]map[string]any, error) {
	group, err := p.Map("media")
	if err != nil {
		return nil, err
	}

	rawItems, err := cast.ToSliceE(group["media"])
	if err != nil {
		return nil, &domain.ValidationError{Param: "media", Err: err}
	}

	items := make([]map[string]any, 0, len(rawItems))
	for _, raw := range rawItems {
		src, err := cast.ToStringMapE(raw)
		if err != nil {
			return nil, &domain.ValidationError{Param: "media", Err: err}
		}

		item := make(map[string]any, len(src))
		for k, v := range src {
			if k == "additionalFields" {
				continue
			}
			item[k] = v
		}
		if extra, err := cast.ToStringMapE(src["additionalFields"]); err == nil {
			maps.Copy(item, extra)
		}
		items = append(items, item)
	}

	return items, nil
}

type mediaGroupInput struct {
	ChatID           string `param:"chatId"`
	ReplyToMessageID int    `param:"replyToMessageId"`
}

func SendMediaGroup(p domain.Params) (*bot.SendMediaGroupParams, error) {
	var in mediaGroupInput
	if err := p.Decode(&in, "chatId", "media"); err != nil {
		return nil, err
	}

	items, err := FlattenMediaItems(p)
	if err != nil {
		return nil, err
	}

	media := make([]models.InputMedia, 0, len(items))
	for i, item := range items {
		m, err := inputMedia(item)
		if err != nil {
			return nil, &domain.ValidationError{Param: fmt.Sprintf("media[%d]", i), Err: err}
		}
		media = append(media, m)
	}

	return &bot.SendMediaGroupParams{
		ChatID:          in.ChatID,
		Media:           media,
		ReplyParameters: replyParameters(in.ReplyToMessageID),
	}, nil
}

func inputMedia(item map[string]any) (models.InputMedia, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}

	switch t := cast.ToString(item["type"]); t {
	case "photo":
		out := &models.InputMediaPhoto{}
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, err
		}
		return out, nil
	case "video":
		out := &models.InputMediaVideo{}
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported media type %q", t)
	}
}

type locationInput struct {
	ChatID             string  `param:"chatId"`
	Latitude           float64 `param:"latitude"`
	Longitude          float64 `param:"longitude"`
	HorizontalAccuracy float64 `param:"horizontal_accuracy"`
	ReplyToMessageID   int     `param:"replyToMessageId"`
}

func SendLocation(p domain.Params) (*bot.SendLocationParams, error) {
	var in locationInput
	if err := p.Decode(&in, "chatId", "latitude", "longitude"); err != nil {
		return nil, err
	}

	markup, err := Markup(p)
	if err != nil {
		return nil, err
	}

	return &bot.SendLocationParams{
		ChatID:             in.ChatID,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		HorizontalAccuracy: in.HorizontalAccuracy,
		ReplyParameters:    replyParameters(in.ReplyToMessageID),
		ReplyMarkup:        markup,
	}, nil
}

type chatActionInput struct {
	ChatID string `param:"chatId"`
	Action string `param:"action"`
}

func SendChatAction(p domain.Params) (*bot.SendChatActionParams, error) {
	var in chatActionInput
	if err := p.Decode(&in, "chatId", "action"); err != nil {
		return nil, err
	}

	return &bot.SendChatActionParams{
		ChatID: in.ChatID,
		Action: models.ChatAction(in.Action),
	}, nil
}

type contactInput struct {
	ChatID           string `param:"chatId"`
	PhoneNumber      string `param:"phone_number"`
	FirstName        string `param:"first_name"`
	LastName         string `param:"last_name"`
	ReplyToMessageID int    `param:"replyToMessageId"`
}

// ContactRequest is the body of sendContact, posted as plain JSON.
type ContactRequest struct {
	ChatID           string              `json:"chat_id"`
	PhoneNumber      string              `json:"phone_number"`
	FirstName        string              `json:"first_name"`
	LastName         string              `json:"last_name,omitempty"`
	ReplyToMessageID int                 `json:"reply_to_message_id,omitempty"`
	ReplyMarkup      *domain.ReplyMarkup `json:"reply_markup,omitempty"`
}

func SendContact(p domain.Params) (*ContactRequest, error) {
	var in contactInput
	if err := p.Decode(&in, "chatId", "phone_number", "first_name"); err != nil {
		return nil, err
	}

	return &ContactRequest{
		ChatID:           in.ChatID,
		PhoneNumber:      in.PhoneNumber,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		ReplyToMessageID: in.ReplyToMessageID,
		ReplyMarkup:      domain.BuildMarkup(p),
	}, nil
}
