package compress

// ZstdCompressor compresses payloads with Zstandard. It gives the smallest
// envelopes and is the interchange default.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec at the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
