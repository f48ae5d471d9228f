package service

import (
	"context"
	"fmt"
	"path"

	"balebridge/internal/core/domain"
	"balebridge/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
)

// Resolver fetches remote files in two steps: a metadata lookup that yields
// the server-side path, then a download of the bytes behind it.
type Resolver struct {
	locator    port.FileLocator
	downloader port.Downloader
}

func NewResolver(locator port.FileLocator, downloader port.Downloader) *Resolver {
	return &Resolver{locator: locator, downloader: downloader}
}

func (r *Resolver) Resolve(ctx context.Context, fileID string) (domain.BinaryData, error) {
	l := log.With().Str("file_id", fileID).Logger()

	f, err := r.locator.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		err = fmt.Errorf("error looking up file: %w", err)
		l.Error().Err(err).Send()
		return domain.BinaryData{}, err
	}
	if f == nil || f.FilePath == "" {
		err = fmt.Errorf("error looking up file: no file path returned")
		l.Error().Err(err).Send()
		return domain.BinaryData{}, err
	}

	l.Debug().Str("file_path", f.FilePath).Msg("file located")

	data, err := r.downloader.Download(ctx, r.locator.FileDownloadLink(f))
	if err != nil {
		err = fmt.Errorf("error downloading file: %w", err)
		l.Error().Err(err).Send()
		return domain.BinaryData{}, err
	}

	l.Debug().Int("bytes", len(data)).Msg("file downloaded")

	return domain.BinaryData{
		Data:     data,
		FileName: path.Base(f.FilePath),
	}, nil
}
