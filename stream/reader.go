package stream

import (
	"errors"
	"io"

	"github.com/arloliu/tes3/endian"
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
)

// Reader is a cursor over an in-memory buffer.
//
// The Reader borrows the buffer for the duration of decoding. Every value it
// returns owns its memory, no sub-slice of the input escapes.
type Reader struct {
	data   []byte
	pos    int
	base   int64 // absolute offset of data[0] in the outermost buffer
	err    error
	engine endian.EndianEngine
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Offset returns the absolute position of the cursor.
func (r *Reader) Offset() int64 {
	return r.base + int64(r.pos)
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Done reports whether the whole buffer has been consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Fail records err at the current offset and returns the sticky error.
// If the Reader already failed, the earlier error is kept.
func (r *Reader) Fail(err error) error {
	return r.FailAt(err, r.Offset())
}

// FailAt records err at the given absolute offset.
//
// Sentinel errors are wrapped in an *errs.DecodeError. An error that already
// is a *errs.DecodeError is stored unchanged.
func (r *Reader) FailAt(err error, offset int64) error {
	if r.err != nil {
		return r.err
	}

	var de *errs.DecodeError
	if errors.As(err, &de) {
		r.err = err
	} else {
		r.err = errs.NewDecodeError(err, offset)
	}

	return r.err
}

// FailSize records a size mismatch at the given offset.
func (r *Reader) FailSize(expected, actual int64, offset int64) error {
	if r.err != nil {
		return r.err
	}

	de := errs.NewDecodeError(errs.ErrSizeMismatch, offset)
	de.Expected = expected
	de.Actual = actual

	return r.FailAt(de, offset)
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Len() < n {
		r.Fail(errs.ErrUnexpectedEOF)
		return nil
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b
}

// U8 reads an unsigned byte.
func (r *Reader) U8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// I8 reads a signed byte.
func (r *Reader) I8() int8 {
	return int8(r.U8())
}

// Bool reads a byte and reports whether it is non-zero.
func (r *Reader) Bool() bool {
	return r.U8() != 0
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}

	return r.engine.Uint16(b)
}

// I16 reads a little-endian int16.
func (r *Reader) I16() int16 {
	return int16(r.U16())
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// I32 reads a little-endian int32.
func (r *Reader) I32() int32 {
	return int32(r.U32())
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}

	return r.engine.Uint64(b)
}

// F32 reads a little-endian IEEE-754 float32.
func (r *Reader) F32() float32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return endian.Float32(r.engine, b)
}

// Bytes reads n bytes into a newly allocated slice.
func (r *Reader) Bytes(n int) []byte {
	b := r.take(n)
	if b == nil {
		return nil
	}

	out := make([]byte, n)
	copy(out, b)

	return out
}

// ReadFull fills dst from the buffer.
func (r *Reader) ReadFull(dst []byte) {
	if b := r.take(len(dst)); b != nil {
		copy(dst, b)
	}
}

// Skip advances the cursor by n bytes without decoding them.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// Rest reads all remaining bytes into a newly allocated slice.
func (r *Reader) Rest() []byte {
	return r.Bytes(r.Len())
}

// String reads n bytes as a Windows-1252 string with trailing NULs removed.
func (r *Reader) String(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}

	return decodeText(trimNulls(b))
}

// FixedString reads an n byte null-padded string, cut at the first NUL.
func (r *Reader) FixedString(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}

	return decodeText(cutNull(b))
}

// Tag reads a four byte tag.
//
// Tag returns io.EOF when no bytes remain, which is how chunk and record
// loops terminate. If between one and three bytes remain the input is
// truncated and errs.ErrUnexpectedEOF is returned.
func (r *Reader) Tag() (format.Tag, error) {
	if r.err != nil {
		return format.Tag{}, r.err
	}
	if r.Done() {
		return format.Tag{}, io.EOF
	}

	b := r.take(format.TagSize)
	if b == nil {
		return format.Tag{}, r.err
	}

	return format.Tag(b), nil
}

// PeekTag returns the next tag without consuming it.
func (r *Reader) PeekTag() (format.Tag, bool) {
	if r.err != nil || r.Len() < format.TagSize {
		return format.Tag{}, false
	}

	return format.Tag(r.data[r.pos : r.pos+format.TagSize]), true
}

// ExpectTag reads a tag and fails with errs.ErrUnrecognizedTag if it is not want.
func (r *Reader) ExpectTag(want format.Tag) error {
	offset := r.Offset()
	got, err := r.Tag()
	if errors.Is(err, io.EOF) {
		return r.FailAt(errs.ErrUnexpectedEOF, offset)
	}
	if err != nil {
		return err
	}
	if got != want {
		de := errs.NewDecodeError(errs.ErrUnrecognizedTag, offset)
		de.Chunk = got

		return r.FailAt(de, offset)
	}

	return nil
}

// ExpectU32 reads a uint32 and fails with errs.ErrSizeMismatch if it is not want.
func (r *Reader) ExpectU32(want uint32) error {
	offset := r.Offset()
	got := r.U32()
	if r.err != nil {
		return r.err
	}
	if got != want {
		return r.FailSize(int64(want), int64(got), offset)
	}

	return nil
}

// ExpectSize reads a chunk size field and checks it against the fixed size of
// the chunk layout.
func (r *Reader) ExpectSize(size int) error {
	return r.ExpectU32(uint32(size))
}

// Sub returns a Reader over the next n bytes and advances past them.
//
// Offsets reported by the child Reader are absolute. The child fails
// independently of the parent.
func (r *Reader) Sub(n int) *Reader {
	offset := r.Offset()
	b := r.take(n)
	if b == nil {
		return &Reader{base: offset, err: r.err, engine: r.engine}
	}

	return &Reader{
		data:   b,
		base:   offset,
		engine: r.engine,
	}
}
