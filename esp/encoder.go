package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/options"
	"github.com/arloliu/tes3/stream"
)

// EncoderConfig holds the encoding options.
type EncoderConfig struct {
	recountObjects bool
}

// NewEncoderConfig creates an EncoderConfig that writes records exactly as
// they are stored.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{}
}

// EncodeOption is a functional option for configuring encoding.
type EncodeOption = options.Option[*EncoderConfig]

// WithRecountObjects refreshes Header.NumObjects with the number of records
// being written. By default the stored value is kept so that a decoded plugin
// re-encodes byte for byte.
func WithRecountObjects() EncodeOption {
	return options.NoError(func(c *EncoderConfig) {
		c.recountObjects = true
	})
}

func newEncoderConfig(opts ...EncodeOption) (*EncoderConfig, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// encodeRecord writes the record frame around rec's chunks.
func encodeRecord(w *stream.Writer, rec Record) error {
	w.Tag(rec.Tag())
	p := w.Reserve()
	w.U32(0) // reserved
	w.U32(uint32(rec.ObjectFlags()))
	if err := rec.encode(w); err != nil {
		return w.Fail(err)
	}

	return w.Patch(p, stream.RecordHeaderWidth)
}

// writeID writes a mandatory NUL terminated string chunk.
func writeID(w *stream.Writer, tag format.Tag, s string) {
	p := w.BeginChunk(tag)
	w.ZString(s)
	w.EndChunk(p)
}

// writeString writes a NUL terminated string chunk unless s is empty.
func writeString(w *stream.Writer, tag format.Tag, s string) {
	if s != "" {
		writeID(w, tag, s)
	}
}

// writeText writes an unterminated string chunk unless s is empty.
func writeText(w *stream.Writer, tag format.Tag, s string) {
	if s == "" {
		return
	}

	p := w.BeginChunk(tag)
	w.String(s)
	w.EndChunk(p)
}

// writeFixedString writes an n byte null-padded string chunk.
func writeFixedString(w *stream.Writer, tag format.Tag, s string, n int) {
	w.Chunk(tag, n, func(w *stream.Writer) {
		w.FixedString(s, n)
	})
}

// writeRaw writes b as a chunk unless it is empty.
func writeRaw(w *stream.Writer, tag format.Tag, b []byte) {
	if len(b) == 0 {
		return
	}

	p := w.BeginChunk(tag)
	w.Raw(b)
	w.EndChunk(p)
}

func writeU8(w *stream.Writer, tag format.Tag, v uint8) {
	w.Chunk(tag, 1, func(w *stream.Writer) { w.U8(v) })
}

func writeI32(w *stream.Writer, tag format.Tag, v int32) {
	w.Chunk(tag, 4, func(w *stream.Writer) { w.I32(v) })
}

func writeU32(w *stream.Writer, tag format.Tag, v uint32) {
	w.Chunk(tag, 4, func(w *stream.Writer) { w.U32(v) })
}

func writeF32(w *stream.Writer, tag format.Tag, v float32) {
	w.Chunk(tag, 4, func(w *stream.Writer) { w.F32(v) })
}

// writeDeleted writes the canonical DELE chunk when deleted is set. The
// payload is always a single zero uint32 whatever size was read.
func writeDeleted(w *stream.Writer, deleted bool) {
	if deleted {
		writeU32(w, tagDELE, 0)
	}
}
