package esp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/stream"
)

// Plugin is a decoded ESP/ESM file: the header followed by the records in
// file order.
type Plugin struct {
	Header  *Header
	Records []Record
}

// DecodePlugin decodes a whole plugin held in memory.
//
// The first record must be a TES3 header. The remaining records are decoded
// in order until the input is exhausted. Every returned record owns its data;
// nothing aliases the input slice.
//
// Parameters:
//   - data: The complete plugin file content
//   - opts: Decode options such as WithLenient
//
// Returns:
//   - *Plugin: The decoded plugin
//   - error: A *errs.DecodeError wrapping the failure cause
func DecodePlugin(data []byte, opts ...DecodeOption) (*Plugin, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	r := stream.NewReader(data)
	if tag, ok := r.PeekTag(); !ok || tag != TagTES3 {
		de := errs.NewDecodeError(errs.ErrMissingHeader, 0)
		de.Record = tag

		return nil, de
	}

	rec, err := d.decodeRecord(r)
	if err != nil {
		return nil, err
	}

	p := &Plugin{Header: rec.(*Header)}
	p.Records, err = d.decodeAll(r)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// DecodeRecords decodes a bare sequence of framed records. Unlike
// DecodePlugin it does not require a header; a TES3 record in the sequence is
// returned like any other record.
func DecodeRecords(data []byte, opts ...DecodeOption) ([]Record, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return d.decodeAll(stream.NewReader(data))
}

func (d *decoder) decodeAll(r *stream.Reader) ([]Record, error) {
	records := make([]Record, 0)
	for {
		rec, err := d.decodeRecord(r)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
}

// EncodeRecords encodes records back to back without a header.
func EncodeRecords(records []Record) ([]byte, error) {
	w := stream.NewPluginWriter()
	for _, rec := range records {
		if err := EncodeRecord(w, rec); err != nil {
			w.Release()
			return nil, err
		}
	}

	return w.Finish()
}

// Encode encodes the plugin: the header first, then the records in slice
// order.
//
// Header.NumObjects is written as stored unless WithRecountObjects is given,
// in which case it is set to len(p.Records) in the output. The receiver is
// never modified.
func (p *Plugin) Encode(opts ...EncodeOption) ([]byte, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}
	if p.Header == nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailure, errs.ErrMissingHeader)
	}

	header := p.Header
	if cfg.recountObjects {
		h := *p.Header
		h.NumObjects = uint32(len(p.Records))
		header = &h
	}

	w := stream.NewPluginWriter()
	if err := EncodeRecord(w, header); err != nil {
		w.Release()
		return nil, err
	}
	for _, rec := range p.Records {
		if err := EncodeRecord(w, rec); err != nil {
			w.Release()
			return nil, err
		}
	}

	return w.Finish()
}

// Index builds a case-insensitive editor id index over the records.
func (p *Plugin) Index() *Index {
	return NewIndex(p.Records)
}

// Load reads and decodes the plugin file at path.
func Load(path string, opts ...DecodeOption) (*Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodePlugin(data, opts...)
}

// Save encodes the plugin and writes it to path.
func (p *Plugin) Save(path string, opts ...EncodeOption) error {
	data, err := p.Encode(opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
