package service

import (
	"context"
	"errors"
	"fmt"

	"balebridge/internal/core/domain"
	"balebridge/internal/core/port"

	"github.com/rs/zerolog/log"
)

var errNoFileID = errors.New("attachment carries no file id")

// Trigger turns one inbound webhook body into a record for the sink.
type Trigger struct {
	resolver   port.MediaResolver
	sink       port.RecordSink
	authorizer Authorizer
	imageSize  domain.PhotoSize
}

func NewTrigger(resolver port.MediaResolver, sink port.RecordSink, authorizer Authorizer, imageSize domain.PhotoSize) *Trigger {
	return &Trigger{
		resolver:   resolver,
		sink:       sink,
		authorizer: authorizer,
		imageSize:  imageSize,
	}
}

// Handle classifies the body, fetches its attachment if it has one and emits
// the body verbatim under json together with the fetched bytes under
// binary.data. Events from chats that are not allowed are dropped silently.
func (t *Trigger) Handle(ctx context.Context, body []byte) error {
	event, err := domain.Classify(body)
	if err != nil {
		log.Warn().Err(err).Msg("discarding webhook body")
		return err
	}

	l := log.With().
		Int64("update_id", event.UpdateID).
		Int64("chat_id", event.ChatID).
		Str("kind", string(event.Kind)).
		Logger()

	if t.authorizer != nil && !t.authorizer.IsAuthorized(event.ChatID) {
		l.Info().Msg("event from unauthorized chat dropped")
		return nil
	}

	record := domain.NewRecord(0, event.Raw)

	if event.HasAttachment() {
		fileID := event.SelectFileID(t.imageSize)
		l.Debug().Str("attachment", string(event.Attachment)).Str("file_id", fileID).Msg("resolving attachment")

		var bin domain.BinaryData
		err := errNoFileID
		if fileID != "" {
			bin, err = t.resolver.Resolve(ctx, fileID)
		}
		if err != nil {
			err = &domain.ResolveError{
				UpdateID:  event.UpdateID,
				ChatID:    event.ChatID,
				MessageID: event.MessageID,
				FileID:    fileID,
				Err:       err,
			}
			l.Error().Err(err).Send()
			return err
		}
		record.Binary[binaryProperty] = bin
	}

	if err := t.sink.Emit(ctx, record); err != nil {
		err = fmt.Errorf("failed to emit event record: %w", err)
		l.Error().Err(err).Send()
		return err
	}

	l.Info().Msg("event emitted")

	return nil
}
