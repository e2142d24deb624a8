// Package esp implements the record codec of the TES3 plugin format.
//
// Every record kind of the format has a Go type in this package: *Header for
// TES3, *MiscItem for MISC, *Npc for NPC_ and so on. All of them implement
// Record. The set is closed and listed in a single registry, see Tags,
// NewRecord and DisplayName.
//
// # Wire Layout
//
// A record is framed as
//
//	tag [4]byte | size uint32 | reserved uint32 | flags uint32 | chunks
//
// where size counts the chunk bytes only. Each chunk is framed as
//
//	tag [4]byte | size uint32 | payload
//
// All integers are little-endian. Strings are Windows-1252 on the wire and
// UTF-8 in Go.
//
// # Decoding Rules
//
//   - Fixed data blocks (MCDT, NPDT, ...) must have their exact size, else
//     decoding fails with errs.ErrSizeMismatch.
//   - Repeated chunks (inventory, effects, AI packages, ...) keep their order.
//   - A DELE chunk sets ObjectDeleted whatever its payload. It is always
//     written back as a four byte zero.
//   - Optional chunks decode into pointer fields so that absent and zero
//     stay distinct.
//   - An unknown chunk or record tag fails with errs.ErrUnrecognizedTag
//     unless WithLenient is given.
//
// # Encoding Rules
//
// Chunks are written in the canonical order of their record kind. Empty
// strings, empty collections and nil optional values are omitted. Fixed data
// blocks are always written.
package esp
