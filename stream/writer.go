package stream

import (
	"fmt"
	"slices"

	"github.com/arloliu/tes3/endian"
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/pool"
)

// Header widths used with Patch. A chunk size field is followed directly by
// the payload; a record size field is followed by the reserved and flags words.
const (
	ChunkHeaderWidth  = 4
	RecordHeaderWidth = 12
)

// Placeholder identifies a reserved four byte length field.
type Placeholder struct {
	offset int
}

// Offset returns the buffer position of the placeholder.
func (p Placeholder) Offset() int {
	return p.offset
}

// Writer appends encoded primitives to a pooled buffer.
//
// A Writer must be released with Release or Finish once it is no longer
// needed. After a failure the buffer content is unspecified and must be
// discarded.
type Writer struct {
	buf     *pool.ByteBuffer
	put     func(*pool.ByteBuffer)
	engine  endian.EndianEngine
	pending []int
	err     error
}

// NewWriter creates a Writer backed by a buffer sized for single records.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetRecordBuffer(),
		put:    pool.PutRecordBuffer,
		engine: endian.GetLittleEndianEngine(),
	}
}

// NewPluginWriter creates a Writer backed by a buffer sized for whole plugins.
func NewPluginWriter() *Writer {
	return &Writer{
		buf:    pool.GetPluginBuffer(),
		put:    pool.PutPluginBuffer,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Err returns the first error encountered by the Writer.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless the Writer already failed, and returns the sticky error.
func (w *Writer) Fail(err error) error {
	if w.err == nil {
		w.err = err
	}

	return w.err
}

// Bytes returns a copy of the written bytes.
//
// Returns:
//   - []byte: Encoded bytes owned by the caller
//   - error: The sticky error, or ErrEncodeFailure if a placeholder is unresolved
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if len(w.pending) > 0 {
		return nil, fmt.Errorf("%w: %d unresolved length placeholder(s)", errs.ErrEncodeFailure, len(w.pending))
	}

	return slices.Clone(w.buf.Bytes()), nil
}

// Release returns the underlying buffer to its pool.
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}
	w.put(w.buf)
	w.buf = nil
}

// Finish returns the written bytes and releases the Writer.
func (w *Writer) Finish() ([]byte, error) {
	defer w.Release()

	return w.Bytes()
}

func (w *Writer) ok() bool {
	return w.err == nil
}

// U8 writes an unsigned byte.
func (w *Writer) U8(v uint8) {
	if w.ok() {
		w.buf.B = append(w.buf.B, v)
	}
}

// I8 writes a signed byte.
func (w *Writer) I8(v int8) {
	w.U8(uint8(v))
}

// Bool writes 1 for true and 0 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.U8(1)
	} else {
		w.U8(0)
	}
}

// U16 writes a little-endian uint16.
func (w *Writer) U16(v uint16) {
	if w.ok() {
		w.buf.B = w.engine.AppendUint16(w.buf.B, v)
	}
}

// I16 writes a little-endian int16.
func (w *Writer) I16(v int16) {
	w.U16(uint16(v))
}

// U32 writes a little-endian uint32.
func (w *Writer) U32(v uint32) {
	if w.ok() {
		w.buf.B = w.engine.AppendUint32(w.buf.B, v)
	}
}

// I32 writes a little-endian int32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// U64 writes a little-endian uint64.
func (w *Writer) U64(v uint64) {
	if w.ok() {
		w.buf.B = w.engine.AppendUint64(w.buf.B, v)
	}
}

// F32 writes a little-endian IEEE-754 float32.
func (w *Writer) F32(v float32) {
	if w.ok() {
		w.buf.B = endian.AppendFloat32(w.engine, w.buf.B, v)
	}
}

// Raw writes b unchanged.
func (w *Writer) Raw(b []byte) {
	if w.ok() {
		w.buf.MustWrite(b)
	}
}

// Zeros writes n zero bytes.
func (w *Writer) Zeros(n int) {
	if w.ok() && n > 0 {
		w.buf.ExtendOrGrow(n)
	}
}

// Tag writes a four byte tag.
func (w *Writer) Tag(t format.Tag) {
	w.Raw(t[:])
}

// String writes s as Windows-1252 without a terminator.
func (w *Writer) String(s string) {
	if !w.ok() {
		return
	}

	b, err := encodeText(s)
	if err != nil {
		w.Fail(err)
		return
	}
	w.buf.MustWrite(b)
}

// ZString writes s as Windows-1252 followed by a NUL terminator.
func (w *Writer) ZString(s string) {
	w.String(s)
	w.U8(0)
}

// FixedString writes s into an n byte null-padded field, truncating on overflow.
func (w *Writer) FixedString(s string, n int) {
	if !w.ok() {
		return
	}

	b, err := encodeText(s)
	if err != nil {
		w.Fail(err)
		return
	}
	if len(b) > n {
		b = b[:n]
	}
	w.buf.MustWrite(b)
	w.Zeros(n - len(b))
}

// Reserve writes a four byte zero placeholder to be filled in by Patch.
func (w *Writer) Reserve() Placeholder {
	p := Placeholder{offset: w.buf.Len()}
	if w.ok() {
		w.buf.ExtendOrGrow(4)
		w.pending = append(w.pending, p.offset)
	}

	return p
}

// Patch resolves placeholder p with the payload length written since it.
//
// The length is computed as len - p.offset - headerWidth, where headerWidth
// counts the placeholder itself plus any header words following it
// (ChunkHeaderWidth or RecordHeaderWidth).
//
// Returns:
//   - error: ErrEncodeFailure if p was not reserved or was already patched
func (w *Writer) Patch(p Placeholder, headerWidth int) error {
	if !w.ok() {
		return w.err
	}

	idx := slices.Index(w.pending, p.offset)
	if idx < 0 {
		return w.Fail(fmt.Errorf("%w: patch of unreserved placeholder at offset %d", errs.ErrEncodeFailure, p.offset))
	}

	size := w.buf.Len() - p.offset - headerWidth
	if size < 0 {
		return w.Fail(fmt.Errorf("%w: negative payload length at offset %d", errs.ErrEncodeFailure, p.offset))
	}

	w.engine.PutUint32(w.buf.B[p.offset:p.offset+4], uint32(size))
	w.pending = slices.Delete(w.pending, idx, idx+1)

	return nil
}

// BeginChunk writes a chunk tag and reserves its size field.
func (w *Writer) BeginChunk(tag format.Tag) Placeholder {
	w.Tag(tag)
	return w.Reserve()
}

// EndChunk patches the size field reserved by BeginChunk.
// Failures are reported through Err.
func (w *Writer) EndChunk(p Placeholder) {
	_ = w.Patch(p, ChunkHeaderWidth)
}

// Chunk writes a fixed-size chunk. fn must write exactly size bytes,
// otherwise the Writer fails with ErrEncodeFailure.
func (w *Writer) Chunk(tag format.Tag, size int, fn func(w *Writer)) {
	if !w.ok() {
		return
	}

	w.Tag(tag)
	w.U32(uint32(size))
	start := w.buf.Len()
	fn(w)
	if !w.ok() {
		return
	}

	if written := w.buf.Len() - start; written != size {
		w.Fail(fmt.Errorf("%w: chunk %s wrote %d bytes, layout is %d", errs.ErrEncodeFailure, tag, written, size))
	}
}
