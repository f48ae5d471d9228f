package payload

import (
	"fmt"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/spf13/cast"
)

// InputSticker describes a sticker by file identifier or URL.
type InputSticker struct {
	Sticker   string   `json:"sticker" param:"sticker"`
	Format    string   `json:"format,omitempty" param:"format"`
	EmojiList []string `json:"emoji_list,omitempty" param:"emojiList"`
}

// StickerSetRequest is the body of createNewStickerSet.
type StickerSetRequest struct {
	UserID   int64          `json:"user_id"`
	Name     string         `json:"name"`
	Title    string         `json:"title"`
	Stickers []InputSticker `json:"stickers"`
}

// AddStickerRequest is the body of addStickerToSet.
type AddStickerRequest struct {
	UserID  int64        `json:"user_id"`
	Name    string       `json:"name"`
	Sticker InputSticker `json:"sticker"`
}

type stickerSetInput struct {
	UserID int64  `param:"userId"`
	Name   string `param:"name"`
	Title  string `param:"title"`
}

func GetStickerSet(p domain.Params) (*bot.GetStickerSetParams, error) {
	var in stickerSetInput
	if err := p.Decode(&in, "name"); err != nil {
		return nil, err
	}

	return &bot.GetStickerSetParams{Name: in.Name}, nil
}

func CreateNewStickerSet(p domain.Params) (*StickerSetRequest, error) {
	var in stickerSetInput
	if err := p.Decode(&in, "userId", "name", "title", "stickers"); err != nil {
		return nil, err
	}

	stickers, err := inputStickers(p["stickers"])
	if err != nil {
		return nil, err
	}

	return &StickerSetRequest{
		UserID:   in.UserID,
		Name:     in.Name,
		Title:    in.Title,
		Stickers: stickers,
	}, nil
}

func AddStickerToSet(p domain.Params) (*AddStickerRequest, error) {
	var in stickerSetInput
	if err := p.Decode(&in, "userId", "name", "sticker"); err != nil {
		return nil, err
	}

	var sticker InputSticker
	if err := p.Decode(&sticker); err != nil {
		return nil, err
	}
	if sticker.Sticker == "" {
		return nil, &domain.ValidationError{Param: "sticker", Err: errEmpty}
	}

	return &AddStickerRequest{UserID: in.UserID, Name: in.Name, Sticker: sticker}, nil
}

// inputStickers accepts a plain list or the collection form {"sticker": [...]}.
func inputStickers(raw any) ([]InputSticker, error) {
	if collection, err := cast.ToStringMapE(raw); err == nil {
		raw = collection["sticker"]
	}

	list, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, &domain.ValidationError{Param: "stickers", Err: err}
	}
	if len(list) == 0 {
		return nil, &domain.ValidationError{Param: "stickers", Err: errEmpty}
	}

	stickers := make([]InputSticker, 0, len(list))
	for i, entry := range list {
		m, err := cast.ToStringMapE(entry)
		if err != nil {
			return nil, &domain.ValidationError{Param: fmt.Sprintf("stickers[%d]", i), Err: err}
		}

		var s InputSticker
		if err := domain.Params(m).Decode(&s, "sticker"); err != nil {
			return nil, err
		}
		stickers = append(stickers, s)
	}

	return stickers, nil
}
