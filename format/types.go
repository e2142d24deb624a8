package format

type (
	// Tag is a four byte ASCII identifier naming a record kind or a chunk kind.
	Tag [4]byte

	// CompressionType selects the codec used by the interchange wrapper.
	CompressionType uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// TagSize is the wire width of a Tag.
const TagSize = 4

// NewTag builds a Tag from a string. Strings shorter than four bytes are
// zero padded, longer strings are truncated.
func NewTag(s string) Tag {
	var t Tag
	copy(t[:], s)

	return t
}

// String returns the tag as text. Non-printable bytes are rendered as '?'.
func (t Tag) String() string {
	b := make([]byte, TagSize)
	for i, c := range t {
		if c < 0x20 || c > 0x7e {
			c = '?'
		}
		b[i] = c
	}

	return string(b)
}

// IsZero reports whether the tag is all zero bytes.
func (t Tag) IsZero() bool {
	return t == Tag{}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
