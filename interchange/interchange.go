// Package interchange converts record graphs to and from a compact text
// form, suitable for clipboards, JSON documents or database cells.
//
// The text is built in layers:
//
//	records -> esp.EncodeRecords -> compress codec -> CBOR envelope -> base64
//
// The envelope is a CBOR map in core deterministic encoding:
//
//	{"v": 1, "c": compression, "n": record count, "h": xxhash64(raw), "p": payload}
//
// where raw is the uncompressed record stream. The same records and options
// always produce the same text.
package interchange

import (
	"encoding/base64"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/tes3/compress"
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/hash"
)

// EnvelopeVersion is the envelope layout written by Marshal.
const EnvelopeVersion = 1

type envelope struct {
	Version     uint8                  `cbor:"v"`
	Compression format.CompressionType `cbor:"c"`
	Count       uint32                 `cbor:"n"`
	Hash        uint64                 `cbor:"h"`
	Payload     []byte                 `cbor:"p"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("interchange: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: 4,
	}.DecMode()
	if err != nil {
		panic("interchange: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes records into interchange text.
//
// Parameters:
//   - records: Records to encode, in order; no TES3 header is required
//   - opts: Optional settings (WithCompression)
//
// Returns:
//   - string: Standard base64 text of the CBOR envelope
//   - error: Encoding or compression error
func Marshal(records []esp.Record, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	raw, err := esp.EncodeRecords(records)
	if err != nil {
		return "", err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return "", err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return "", fmt.Errorf("interchange: compress payload: %w", err)
	}

	env := envelope{
		Version:     EnvelopeVersion,
		Compression: cfg.compression,
		Count:       uint32(len(records)), //nolint:gosec
		Hash:        hash.Sum(raw),
		Payload:     payload,
	}

	data, err := encMode.Marshal(&env)
	if err != nil {
		return "", fmt.Errorf("interchange: marshal envelope: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Unmarshal decodes interchange text produced by Marshal.
//
// Parameters:
//   - text: Base64 envelope text
//   - opts: Optional settings (WithDecodeOptions)
//
// Returns:
//   - []esp.Record: Decoded records in their original order
//   - error: errs.ErrUnsupportedEnvelope for malformed text or an unknown
//     version, errs.ErrInvalidCompression for an unknown codec,
//     errs.ErrChecksumMismatch when the payload does not match its hash or
//     record count, or a record decoding error
func Unmarshal(text string, opts ...Option) ([]esp.Record, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnsupportedEnvelope, err)
	}

	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnsupportedEnvelope, err)
	}
	if env.Version != EnvelopeVersion {
		return nil, fmt.Errorf("%w: version %d", errs.ErrUnsupportedEnvelope, env.Version)
	}

	codec, err := compress.GetCodec(env.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrChecksumMismatch, err)
	}
	if sum := hash.Sum(raw); sum != env.Hash {
		return nil, fmt.Errorf("%w: hash %#016x, want %#016x", errs.ErrChecksumMismatch, sum, env.Hash)
	}

	records, err := esp.DecodeRecords(raw, cfg.decodeOpts...)
	if err != nil {
		return nil, err
	}
	if len(records) != int(env.Count) {
		return nil, fmt.Errorf("%w: %d records, want %d", errs.ErrChecksumMismatch, len(records), env.Count)
	}

	return records, nil
}

// MarshalRecord encodes a single record into interchange text.
func MarshalRecord(rec esp.Record, opts ...Option) (string, error) {
	return Marshal([]esp.Record{rec}, opts...)
}

// UnmarshalRecord decodes text holding exactly one record.
func UnmarshalRecord(text string, opts ...Option) (esp.Record, error) {
	records, err := Unmarshal(text, opts...)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("%w: %d records, want 1", errs.ErrUnsupportedEnvelope, len(records))
	}

	return records[0], nil
}
