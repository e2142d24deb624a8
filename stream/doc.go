// Package stream implements the byte cursors the record codec is built on.
//
// A Reader walks an in-memory buffer and decodes the primitives of the plugin
// format: little-endian integers and floats, Windows-1252 strings, fixed
// capacity null-padded strings, four byte tags and enum and flag values. A
// Writer does the reverse, appending to a pooled buffer, and supports the
// deferred length patch used for chunk and record sizes.
//
// # Error Handling
//
// Both cursors use sticky errors. The first failure is recorded and every
// following operation becomes a no-op returning zero values, so a decoder can
// read a whole fixed block and check Err once:
//
//	r.ExpectSize(12)
//	weight := r.F32()
//	value := r.U32()
//	flags := r.U32()
//	if err := r.Err(); err != nil {
//		return err
//	}
//
// Reader failures are *errs.DecodeError values carrying the absolute byte
// offset of the failed read and wrapping one of the errs sentinels.
//
// # Deferred Length Patch
//
// Chunk and record sizes are only known after their payload has been written.
// The Writer reserves a four byte placeholder, the payload is appended, and
// Patch fills in the payload length:
//
//	p := w.BeginChunk(tagNAME)
//	w.ZString(id)
//	w.EndChunk(p)
//
// A Writer refuses to produce its bytes while any placeholder is unresolved.
package stream
