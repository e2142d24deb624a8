package section

// Frame sizes in bytes.
const (
	RecordHeaderSize = 16 // tag + size + reserved + flags
	ChunkHeaderSize  = 8  // tag + size
)
