package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

// Record is one top-level unit of a plugin.
//
// The set of implementations is closed: every record kind lives in this
// package and is listed in the registry. Implementations are pointer types
// such as *MiscItem.
type Record interface {
	// Tag returns the four byte record tag, for example MISC.
	Tag() format.Tag
	// TypeName returns the display name of the record kind, for example "MiscItem".
	TypeName() string
	// EditorID returns the identifier that keys the record. Comparison is
	// case-insensitive.
	EditorID() string
	// ObjectFlags returns the flags stored in the record header.
	ObjectFlags() ObjectFlags
	// SetObjectFlags replaces the flags stored in the record header.
	SetObjectFlags(flags ObjectFlags)

	decode(d *decoder, r *stream.Reader) error
	encode(w *stream.Writer) error
}

// Base holds the header flags shared by every record kind.
type Base struct {
	Flags ObjectFlags
}

// ObjectFlags returns the record header flags.
func (b *Base) ObjectFlags() ObjectFlags {
	return b.Flags
}

// SetObjectFlags replaces the record header flags.
func (b *Base) SetObjectFlags(flags ObjectFlags) {
	b.Flags = flags
}

// Deleted reports whether the record is marked deleted.
func (b *Base) Deleted() bool {
	return b.Flags.Has(ObjectDeleted)
}
