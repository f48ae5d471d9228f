package port

import (
	"context"

	"balebridge/internal/core/domain"
)

type RawCaller interface {
	// PostJSON sends payload as a JSON body to the named bot API method and
	// returns the decoded response as-is. Non-2xx answers are returned as
	// *domain.RemoteCallError.
	PostJSON(ctx context.Context, method string, payload any) (map[string]any, error)
}

type Downloader interface {
	// Download fetches the raw bytes behind a file URL.
	Download(ctx context.Context, url string) ([]byte, error)
}

type MediaResolver interface {
	// Resolve fetches the content of a remote file by identifier.
	Resolve(ctx context.Context, fileID string) (domain.BinaryData, error)
}

type RecordSink interface {
	// Emit hands a normalized record over to the consumer.
	Emit(ctx context.Context, record domain.OutboundRecord) error
}
