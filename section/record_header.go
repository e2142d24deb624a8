package section

import (
	"github.com/arloliu/tes3/endian"
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
)

// RecordHeader represents the fixed 16 byte frame at the start of every record.
type RecordHeader struct {
	// Tag identifies the record kind.
	Tag format.Tag // byte offset 0-3
	// Size is the payload length, the 16 header bytes excluded.
	Size uint32 // byte offset 4-7
	// Reserved is unused by the format. It is kept on read so callers can
	// detect files written by tools that put data there.
	Reserved uint32 // byte offset 8-11
	// Flags holds the object flag bits.
	Flags uint32 // byte offset 12-15
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes
func (h *RecordHeader) Parse(data []byte) error {
	if len(data) != RecordHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Tag = format.Tag(data[0:4])
	h.Size = engine.Uint32(data[4:8])
	h.Reserved = engine.Uint32(data[8:12])
	h.Flags = engine.Uint32(data[12:16])

	return nil
}

// Bytes serializes the RecordHeader into a byte slice.
// The reserved word is always written as zero.
func (h *RecordHeader) Bytes() []byte {
	b := make([]byte, RecordHeaderSize)

	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], h.Tag[:])
	engine.PutUint32(b[4:8], h.Size)
	engine.PutUint32(b[12:16], h.Flags)

	return b
}

// TotalSize returns the size of the whole record including its header.
func (h *RecordHeader) TotalSize() int {
	return RecordHeaderSize + int(h.Size)
}

// ParseRecordHeader parses a RecordHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with a record (must be at least 16 bytes)
//
// Returns:
//   - RecordHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is too short
func ParseRecordHeader(data []byte) (RecordHeader, error) {
	if len(data) < RecordHeaderSize {
		return RecordHeader{}, errs.ErrInvalidHeaderSize
	}

	h := RecordHeader{}
	if err := h.Parse(data[:RecordHeaderSize]); err != nil {
		return RecordHeader{}, err
	}

	return h, nil
}

// ChunkHeader represents the 8 byte frame at the start of every chunk.
type ChunkHeader struct {
	Tag  format.Tag // byte offset 0-3
	Size uint32     // byte offset 4-7
}

// Parse parses the chunk header from a byte slice of exactly 8 bytes.
func (h *ChunkHeader) Parse(data []byte) error {
	if len(data) != ChunkHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Tag = format.Tag(data[0:4])
	h.Size = endian.GetLittleEndianEngine().Uint32(data[4:8])

	return nil
}

// Bytes serializes the ChunkHeader into a byte slice.
func (h *ChunkHeader) Bytes() []byte {
	b := make([]byte, ChunkHeaderSize)
	copy(b[0:4], h.Tag[:])
	endian.GetLittleEndianEngine().PutUint32(b[4:8], h.Size)

	return b
}

// Scan walks the record frames of a plugin without decoding their payloads.
// fn receives each header and its absolute offset; returning false stops the walk.
//
// Returns:
//   - error: ErrUnexpectedEOF wrapped in a DecodeError if a frame is truncated
func Scan(data []byte, fn func(h RecordHeader, offset int64) bool) error {
	offset := 0
	for offset < len(data) {
		h, err := ParseRecordHeader(data[offset:])
		if err != nil {
			return errs.NewDecodeError(errs.ErrUnexpectedEOF, int64(offset))
		}
		if len(data)-offset < h.TotalSize() {
			de := errs.NewDecodeError(errs.ErrUnexpectedEOF, int64(offset))
			de.Record = h.Tag

			return de
		}
		if !fn(h, int64(offset)) {
			return nil
		}
		offset += h.TotalSize()
	}

	return nil
}

// ScanChunks walks the chunk frames of a record payload found at offset base
// of the plugin. fn receives each header and its absolute offset; returning
// false stops the walk.
//
// Returns:
//   - error: ErrUnexpectedEOF wrapped in a DecodeError if a chunk overruns the payload
func ScanChunks(payload []byte, base int64, fn func(h ChunkHeader, offset int64) bool) error {
	offset := 0
	for offset < len(payload) {
		var h ChunkHeader
		if len(payload)-offset < ChunkHeaderSize {
			return errs.NewDecodeError(errs.ErrUnexpectedEOF, base+int64(offset))
		}
		_ = h.Parse(payload[offset : offset+ChunkHeaderSize])
		if uint64(len(payload)-offset-ChunkHeaderSize) < uint64(h.Size) {
			de := errs.NewDecodeError(errs.ErrUnexpectedEOF, base+int64(offset))
			de.Chunk = h.Tag

			return de
		}
		if !fn(h, base+int64(offset)) {
			return nil
		}
		offset += ChunkHeaderSize + int(h.Size)
	}

	return nil
}
