package domain

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

type EventKind string

const (
	EventMessage     EventKind = "message"
	EventChannelPost EventKind = "channel_post"
)

type AttachmentKind string

const (
	AttachmentNone     AttachmentKind = "none"
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentDocument AttachmentKind = "document"
)

// PhotoSize indexes into the ascending list of photo variants of a message.
type PhotoSize int

const (
	PhotoSmall PhotoSize = iota
	PhotoMedium
	PhotoLarge
	PhotoExtraLarge
)

var photoSizes = map[string]PhotoSize{
	"small":      PhotoSmall,
	"medium":     PhotoMedium,
	"large":      PhotoLarge,
	"extraLarge": PhotoExtraLarge,
}

func ParsePhotoSize(s string) (PhotoSize, error) {
	size, ok := photoSizes[s]
	if !ok {
		return 0, fmt.Errorf("unknown image size %q", s)
	}

	return size, nil
}

var ErrInvalidEvent = errors.New("invalid event body")

// InboundEvent is a classified webhook update.
type InboundEvent struct {
	Kind       EventKind
	Attachment AttachmentKind
	UpdateID   int64
	ChatID     int64
	MessageID  int64
	// PhotoFileIDs is ordered from the smallest to the largest variant.
	PhotoFileIDs []string
	// FileID is set for video and document attachments.
	FileID string
	Raw    map[string]any
}

func (e InboundEvent) HasAttachment() bool {
	return e.Attachment != AttachmentNone
}

// SelectFileID picks the file to fetch for the event. For photos the
// requested size is used when the sender produced that many variants,
// otherwise the first one, the only variant always present.
func (e InboundEvent) SelectFileID(size PhotoSize) string {
	if e.Attachment != AttachmentPhoto {
		return e.FileID
	}
	if len(e.PhotoFileIDs) == 0 {
		return ""
	}

	idx := int(size)
	if idx < 0 || idx >= len(e.PhotoFileIDs) {
		idx = 0
	}

	return e.PhotoFileIDs[idx]
}

// Classify inspects a raw webhook body. channel_post wins over message; the
// attachment is the first of photo, video and document that is present.
func Classify(body []byte) (InboundEvent, error) {
	if !gjson.ValidBytes(body) {
		return InboundEvent{}, fmt.Errorf("%w: not valid JSON", ErrInvalidEvent)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return InboundEvent{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidEvent)
	}

	raw, _ := root.Value().(map[string]any)
	event := InboundEvent{
		Kind:       EventMessage,
		Attachment: AttachmentNone,
		UpdateID:   root.Get("update_id").Int(),
		Raw:        raw,
	}

	if post := root.Get(string(EventChannelPost)); post.Exists() && post.Type != gjson.Null {
		event.Kind = EventChannelPost
	}

	msg := root.Get(string(event.Kind))
	event.ChatID = msg.Get("chat.id").Int()
	event.MessageID = msg.Get("message_id").Int()

	if photo := msg.Get("photo"); photo.IsArray() && len(photo.Array()) > 0 {
		event.Attachment = AttachmentPhoto
		for _, variant := range photo.Array() {
			event.PhotoFileIDs = append(event.PhotoFileIDs, variant.Get("file_id").String())
		}
		return event, nil
	}

	if video := msg.Get("video"); video.IsObject() {
		event.Attachment = AttachmentVideo
		event.FileID = video.Get("file_id").String()
		return event, nil
	}

	if document := msg.Get("document"); document.IsObject() {
		event.Attachment = AttachmentDocument
		event.FileID = document.Get("file_id").String()
		return event, nil
	}

	return event, nil
}
