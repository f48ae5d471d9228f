package payload

import (
	"encoding/json"
	"fmt"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot/models"
)

// Markup builds the item's reply markup and converts it into the shared
// client's typed representation. A nil result means no markup.
func Markup(p domain.Params) (models.ReplyMarkup, error) {
	return toModelsMarkup(domain.BuildMarkup(p))
}

func toModelsMarkup(m *domain.ReplyMarkup) (models.ReplyMarkup, error) {
	if m == nil {
		return nil, nil
	}

	raw, err := json.Marshal(m.Wire())
	if err != nil {
		return nil, fmt.Errorf("encoding reply markup: %w", err)
	}

	switch m.Kind {
	case domain.MarkupInlineKeyboard:
		out := &models.InlineKeyboardMarkup{}
		return decodeMarkup(raw, out)
	case domain.MarkupReplyKeyboard:
		out := &models.ReplyKeyboardMarkup{}
		return decodeMarkup(raw, out)
	case domain.MarkupForceReply:
		out := &models.ForceReply{}
		return decodeMarkup(raw, out)
	case domain.MarkupRemoveKeyboard:
		out := &models.ReplyKeyboardRemove{}
		return decodeMarkup(raw, out)
	default:
		return nil, nil
	}
}

func decodeMarkup(raw []byte, out models.ReplyMarkup) (models.ReplyMarkup, error) {
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, &domain.ValidationError{Param: "replyMarkup", Err: err}
	}

	return out, nil
}
