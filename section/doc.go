// Package section defines the fixed binary frames of the plugin format.
//
// A plugin is a flat sequence of records. Every record starts with a 16 byte
// header followed by its payload, and every payload is a sequence of chunks,
// each with an 8 byte header:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Record header (16 bytes, fixed)                         │
//	│  - Tag (4 bytes): record kind, e.g. "MISC"              │
//	│  - Size (4 bytes): payload length, header excluded      │
//	│  - Reserved (4 bytes): always zero on write             │
//	│  - Flags (4 bytes): object flags (deleted, persistent)  │
//	├─────────────────────────────────────────────────────────┤
//	│ Chunk header (8 bytes, fixed)                           │
//	│  - Tag (4 bytes): chunk kind, e.g. "NAME"               │
//	│  - Size (4 bytes): chunk payload length                 │
//	│ Chunk payload (Size bytes)                              │
//	├─────────────────────────────────────────────────────────┤
//	│ ... more chunks until Size bytes of the record are used │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
// RecordHeader (16 bytes):
//
//	Bytes  | Field    | Type   | Description
//	-------|----------|--------|----------------------------------
//	0-3    | Tag      | [4]u8  | Record kind
//	4-7    | Size     | uint32 | Bytes following the header
//	8-11   | Reserved | uint32 | Ignored on read, zero on write
//	12-15  | Flags    | uint32 | Object flag bits
//
// ChunkHeader (8 bytes):
//
//	Bytes  | Field | Type   | Description
//	-------|-------|--------|----------------------------------
//	0-3    | Tag   | [4]u8  | Chunk kind
//	4-7    | Size  | uint32 | Bytes following the header
//
// All integers are little-endian.
package section
