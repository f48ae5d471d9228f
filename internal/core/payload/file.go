package payload

import (
	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot"
)

func GetFile(p domain.Params) (*bot.GetFileParams, error) {
	fileID, err := p.String("fileId")
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return nil, &domain.ValidationError{Param: "fileId", Err: errEmpty}
	}

	return &bot.GetFileParams{FileID: fileID}, nil
}
