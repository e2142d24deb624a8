// Package errs defines the error values returned by the tes3 codec.
//
// Every failure is rooted in one of the sentinel errors below so callers can
// classify it with errors.Is. Decode failures are additionally wrapped in a
// *DecodeError carrying the record tag, chunk tag and byte offset at which the
// failure was detected.
package errs

import "errors"

// Decode failures.
var (
	// ErrUnexpectedEOF is returned when the input ends before a primitive,
	// chunk or record could be fully read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrSizeMismatch is returned when a chunk declares a size that differs
	// from the fixed size of its layout.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrUnrecognizedTag is returned when a chunk or record tag has no handler.
	ErrUnrecognizedTag = errors.New("unrecognized tag")
	// ErrInvalidDiscriminant is returned when an enum value has no defined variant.
	ErrInvalidDiscriminant = errors.New("invalid discriminant")
	// ErrMissingHeader is returned when a plugin does not start with a TES3 record.
	ErrMissingHeader = errors.New("missing plugin header")
	// ErrDuplicateIdentity is returned in strict identity mode when a record
	// carries its identity chunk more than once.
	ErrDuplicateIdentity = errors.New("duplicate identity chunk")
	// ErrInvalidHeaderSize is returned when a record or chunk header is
	// parsed from a slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrOrphanChunk is returned when a continuation chunk appears without
	// the chunk that opens its group.
	ErrOrphanChunk = errors.New("orphan chunk")
)

// Encode failures.
var (
	// ErrEncodeFailure is returned when a value cannot be written, such as an
	// unresolved length placeholder or a string that cannot be represented in
	// the Windows-1252 code page.
	ErrEncodeFailure = errors.New("encode failure")
)

// Interchange and field access failures.
var (
	ErrChecksumMismatch    = errors.New("interchange checksum mismatch")
	ErrUnsupportedEnvelope = errors.New("unsupported interchange envelope")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidFieldPath    = errors.New("invalid field path")
	ErrFieldTypeMismatch   = errors.New("field type mismatch")
	ErrUnknownRecordTag    = errors.New("unknown record tag")
	ErrDuplicateEditorID   = errors.New("duplicate editor id")
	ErrInvalidEditorID     = errors.New("invalid editor id")
)
