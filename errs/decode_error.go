package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/tes3/format"
)

// DecodeError describes where a decode failure happened.
//
// Err is always one of the sentinel errors of this package, so
// errors.Is(err, errs.ErrSizeMismatch) works through any number of wraps.
// Record and Chunk are zero when the failure happened outside of a record or
// chunk. Expected and Actual are only meaningful for ErrSizeMismatch, Value
// only for ErrInvalidDiscriminant.
type DecodeError struct {
	Err      error
	Record   format.Tag
	Chunk    format.Tag
	Offset   int64
	Expected int64
	Actual   int64
	Value    int64
}

// Error renders the error as "record CREA: chunk NPDT at offset 0x1a4: size
// mismatch (expected 96, got 92)".
func (e *DecodeError) Error() string {
	var sb strings.Builder
	if !e.Record.IsZero() {
		fmt.Fprintf(&sb, "record %s: ", e.Record)
	}
	if !e.Chunk.IsZero() {
		fmt.Fprintf(&sb, "chunk %s ", e.Chunk)
	}
	fmt.Fprintf(&sb, "at offset %#x: %v", e.Offset, e.Err)

	switch {
	case errors.Is(e.Err, ErrSizeMismatch):
		fmt.Fprintf(&sb, " (expected %d, got %d)", e.Expected, e.Actual)
	case errors.Is(e.Err, ErrInvalidDiscriminant):
		fmt.Fprintf(&sb, " (value %d)", e.Value)
	}

	return sb.String()
}

// Unwrap returns the underlying sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a DecodeError for err at the given absolute offset.
func NewDecodeError(err error, offset int64) *DecodeError {
	return &DecodeError{Err: err, Offset: offset}
}

// WithRecord attaches the record tag to err if it is a *DecodeError without one.
// Other errors are returned unchanged.
func WithRecord(err error, tag format.Tag) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Record.IsZero() {
		de.Record = tag
	}

	return err
}

// WithChunk attaches the chunk tag to err if it is a *DecodeError without one.
func WithChunk(err error, tag format.Tag) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Chunk.IsZero() {
		de.Chunk = tag
	}

	return err
}
