package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingToken         = errors.New("missing bot token")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrMissingAttachment    = errors.New("missing binary attachment")
	ErrRemoteCall           = errors.New("remote call failed")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrResolveFailed        = errors.New("failed to resolve media")
)

// ValidationError reports caller-supplied data that could not be used.
type ValidationError struct {
	Param string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %v", e.Param, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidParameter, e.Err}
}

// RemoteCallError reports a non-2xx answer or a transport failure. Body holds
// the decoded error response when the server returned one.
type RemoteCallError struct {
	Method     string
	StatusCode int
	Body       map[string]any
	Err        error
}

func (e *RemoteCallError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Method)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " with status %d", e.StatusCode)
	}
	if desc, ok := e.Body["description"].(string); ok && desc != "" {
		fmt.Fprintf(&b, ": %s", desc)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *RemoteCallError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteCall}
	}
	return []error{ErrRemoteCall, e.Err}
}

// MissingAttachmentError is returned when a binary upload is requested but the
// item carries no binary field under the configured name.
type MissingAttachmentError struct {
	Property string
}

func (e *MissingAttachmentError) Error() string {
	return fmt.Sprintf("item has no binary property %q", e.Property)
}

func (e *MissingAttachmentError) Unwrap() error {
	return ErrMissingAttachment
}

type UnsupportedOperationError struct {
	Action Action
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %q is not supported for resource %q", e.Action.Operation, e.Action.Resource)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// ItemError attributes a failure to a single input item.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// BatchError collects the per-item failures of one execution.
type BatchError struct {
	Failures []*ItemError
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}

	return fmt.Sprintf("%d item(s) failed: %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}

	return errs
}

// ResolveError wraps a media retrieval failure together with the identity of
// the inbound event that referenced the media.
type ResolveError struct {
	UpdateID  int64
	ChatID    int64
	MessageID int64
	FileID    string
	Err       error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolving file %q of update %d (chat %d, message %d): %v",
		e.FileID, e.UpdateID, e.ChatID, e.MessageID, e.Err)
}

func (e *ResolveError) Unwrap() []error {
	return []error{ErrResolveFailed, e.Err}
}
