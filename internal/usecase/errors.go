package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceUnavailable       = errors.New("source unavailable")
	ErrMalformedResponse       = errors.New("malformed response")
	ErrValidationFailed        = errors.New("validation failed")
	ErrStorageConnectionFailed = errors.New("storage connection failed")
	ErrPartialBatchFailure     = errors.New("partial batch failure")
	ErrUnexpectedStorage       = errors.New("unexpected storage error")

	// Row-level kinds. These never abort a batch on their own.
	ErrPlayerNotFound  = errors.New("player not found")
	ErrMalformedRecord = errors.New("malformed record")
)

// SourceError describes a failed call to the source API. Status is zero when
// no HTTP response was received.
type SourceError struct {
	Kind     error
	Endpoint string
	Status   int
	Err      error
}

func (e *SourceError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(": endpoint=")
	b.WriteString(e.Endpoint)
	b.WriteString(fmt.Sprintf(" status=%d", e.Status))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == e.Kind
}

// RowError is one record that could not be written.
type RowError struct {
	Kind string
	ID   int64
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s id=%d: %v", e.Kind, e.ID, e.Err)
}

// PartialBatchError is returned after a batch ran to completion with at least
// one failed record.
type PartialBatchError struct {
	Failed int
	Rows   []RowError
}

func (e *PartialBatchError) Error() string {
	msg := fmt.Sprintf("%s: %d record(s) failed", ErrPartialBatchFailure.Error(), e.Failed)
	if len(e.Rows) > 0 {
		msg += " (first: " + e.Rows[0].Error() + ")"
	}
	return msg
}

func (e *PartialBatchError) Is(target error) bool {
	return target == ErrPartialBatchFailure
}
