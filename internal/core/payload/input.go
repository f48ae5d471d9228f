// Package payload turns the parameter bag of one item into the request of a
// single bot API operation. Every operation decodes an explicit input struct
// and validates it before anything is sent.
package payload

import (
	"bytes"
	"errors"

	"balebridge/internal/core/domain"

	"github.com/go-telegram/bot/models"
)

const defaultBinaryProperty = "data"

var errEmpty = errors.New("must not be empty")

type uploadInput struct {
	BinaryData         bool   `param:"binaryData"`
	BinaryPropertyName string `param:"binaryPropertyName"`
	FileID             string `param:"fileId"`
}

// InputFile picks the file to send for an upload operation. With binaryData
// set the bytes come from the item's binary field and are uploaded under its
// file name; otherwise the fileId parameter is forwarded and nothing is
// uploaded.
func InputFile(p domain.Params, item domain.Item) (models.InputFile, error) {
	var in uploadInput
	if err := p.Decode(&in); err != nil {
		return nil, err
	}

	if !in.BinaryData {
		if in.FileID == "" {
			return nil, &domain.ValidationError{Param: "fileId", Err: errEmpty}
		}
		return &models.InputFileString{Data: in.FileID}, nil
	}

	name := in.BinaryPropertyName
	if name == "" {
		name = defaultBinaryProperty
	}

	bin, ok := item.Binary[name]
	if !ok {
		return nil, &domain.MissingAttachmentError{Property: name}
	}

	fileName := bin.FileName
	if fileName == "" {
		fileName = name
	}

	return &models.InputFileUpload{Filename: fileName, Data: bytes.NewReader(bin.Data)}, nil
}

func replyParameters(messageID int) *models.ReplyParameters {
	if messageID == 0 {
		return nil
	}

	return &models.ReplyParameters{MessageID: messageID}
}

func additionalFields(p domain.Params) (domain.Params, error) {
	m, err := p.Map("additionalFields")
	if err != nil {
		return nil, err
	}

	return domain.Params(m), nil
}
