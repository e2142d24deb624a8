package esp

import (
	"errors"
	"io"
	"log/slog"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/options"
	"github.com/arloliu/tes3/stream"
)

// DecoderConfig holds the decoding options.
type DecoderConfig struct {
	lenient        bool
	strictIdentity bool
	logger         *slog.Logger
}

// NewDecoderConfig creates a DecoderConfig with strict tag checking and a
// logger that discards everything.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		logger: slog.New(slog.DiscardHandler),
	}
}

// DecodeOption is a functional option for configuring decoding.
type DecodeOption = options.Option[*DecoderConfig]

// WithLenient skips unrecognized chunks and records instead of failing.
// Every skipped unit is reported as a warning through the configured logger.
// Default is strict.
func WithLenient() DecodeOption {
	return options.NoError(func(c *DecoderConfig) {
		c.lenient = true
	})
}

// WithStrictIdentity rejects records whose identity chunk occurs more than
// once with errs.ErrDuplicateIdentity. By default the last occurrence wins
// and a warning is logged.
func WithStrictIdentity() DecodeOption {
	return options.NoError(func(c *DecoderConfig) {
		c.strictIdentity = true
	})
}

// WithLogger sets the logger receiving decode warnings. A nil logger restores
// the default discarding logger.
func WithLogger(logger *slog.Logger) DecodeOption {
	return options.NoError(func(c *DecoderConfig) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

// errUnhandled is returned by chunk handlers for tags they do not own.
var errUnhandled = errors.New("unhandled chunk")

// decoder carries per-record decode state.
type decoder struct {
	cfg      *DecoderConfig
	record   format.Tag
	identity bool
	deleted  bool
}

func newDecoder(opts ...DecodeOption) (*decoder, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &decoder{cfg: cfg}, nil
}

func (d *decoder) reset(tag format.Tag) {
	d.record = tag
	d.identity = false
	d.deleted = false
}

// chunk is the payload of one chunk. Reads never go past the declared size.
type chunk struct {
	*stream.Reader
	tag    format.Tag
	size   int
	offset int64 // offset of the chunk tag
}

// expect checks the declared size against a fixed layout. A mismatch fails
// the chunk reader and expect returns false.
func (c *chunk) expect(size int) bool {
	if c.size != size {
		c.FailSize(int64(size), int64(c.size), c.offset+format.TagSize)
		return false
	}

	return true
}

// fail records err at the chunk tag offset.
func (c *chunk) fail(err error) error {
	return c.FailAt(err, c.offset)
}

// str reads the whole chunk as a string.
func (c *chunk) str() string {
	return c.String(c.Len())
}

// chunks runs the chunk loop over a record body until it is exhausted.
func (d *decoder) chunks(r *stream.Reader, handle func(c *chunk) error) error {
	for {
		offset := r.Offset()
		tag, err := r.Tag()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		size := r.U32()
		body := r.Sub(int(size))
		if err := r.Err(); err != nil {
			return errs.WithChunk(err, tag)
		}

		c := &chunk{Reader: body, tag: tag, size: int(size), offset: offset}
		err = handle(c)
		if errors.Is(err, errUnhandled) {
			err = d.unhandled(c)
		}
		if err == nil {
			err = body.Err()
		}
		if err == nil && !body.Done() {
			err = body.FailSize(int64(size-uint32(body.Len())), int64(size), offset+format.TagSize)
		}
		if err != nil {
			return errs.WithChunk(err, tag)
		}
	}
}

func (d *decoder) unhandled(c *chunk) error {
	if c.tag == tagDELE {
		d.deleted = true
		c.Skip(c.Len())

		return nil
	}

	if !d.cfg.lenient {
		de := errs.NewDecodeError(errs.ErrUnrecognizedTag, c.offset)
		de.Chunk = c.tag

		return de
	}

	d.cfg.logger.Warn("skipping unrecognized chunk",
		slog.String("record", d.record.String()),
		slog.String("chunk", c.tag.String()),
		slog.Int64("offset", c.offset),
		slog.Int("size", c.size))
	c.Skip(c.Len())

	return nil
}

// claim marks the identity chunk as seen. A repeated identity chunk is a
// warning, or an error under WithStrictIdentity in which case claim returns
// false.
func (d *decoder) claim(c *chunk) bool {
	if d.identity {
		if d.cfg.strictIdentity {
			de := errs.NewDecodeError(errs.ErrDuplicateIdentity, c.offset)
			de.Chunk = c.tag
			c.FailAt(de, c.offset)

			return false
		}
		d.cfg.logger.Warn("repeated identity chunk, keeping the last one",
			slog.String("record", d.record.String()),
			slog.String("chunk", c.tag.String()),
			slog.Int64("offset", c.offset))
	}
	d.identity = true

	return true
}

// id reads an identity string chunk.
func (d *decoder) id(c *chunk) string {
	if !d.claim(c) {
		return ""
	}

	return c.str()
}

// decodeRecord reads one framed record. It returns io.EOF when r is
// exhausted. In lenient mode an unrecognized record is skipped and
// decodeRecord returns a nil Record and a nil error.
func (d *decoder) decodeRecord(r *stream.Reader) (Record, error) {
	offset := r.Offset()
	tag, err := r.Tag()
	if err != nil {
		return nil, err
	}

	size := r.U32()
	r.Skip(4) // reserved
	flags := stream.FlagsU32[ObjectFlags](r)
	body := r.Sub(int(size))
	if err := r.Err(); err != nil {
		return nil, errs.WithRecord(err, tag)
	}

	rec, ok := NewRecord(tag)
	if !ok {
		if d.cfg.lenient {
			d.cfg.logger.Warn("skipping unrecognized record",
				slog.String("record", tag.String()),
				slog.Int64("offset", offset),
				slog.Int("size", int(size)))

			return nil, nil
		}

		de := errs.NewDecodeError(errs.ErrUnrecognizedTag, offset)
		de.Record = tag

		return nil, de
	}

	d.reset(tag)
	if err := rec.decode(d, body); err != nil {
		return nil, errs.WithRecord(err, tag)
	}
	if d.deleted {
		flags |= ObjectDeleted
	}
	rec.SetObjectFlags(flags)

	return rec, nil
}
