package esp

import (
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

// LeveledEntry is one candidate of a leveled list with the minimum player
// level at which it can be chosen.
type LeveledEntry struct {
	ID    string
	Level uint16
}

// leveledList is the chunk layout shared by LeveledItem and LeveledCreature.
// The entry tag is INAM for items and CNAM for creatures.
type leveledList struct {
	id         *string
	flags      *LeveledFlags
	chanceNone *uint8
	entries    *[]LeveledEntry
	entryTag   format.Tag
}

func (l leveledList) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			*l.id = d.id(c)
		case tagDATA:
			if c.expect(4) {
				*l.flags = stream.FlagsU32[LeveledFlags](c.Reader)
			}
		case tagNNAM:
			if c.expect(1) {
				*l.chanceNone = c.U8()
			}
		case tagINDX:
			if c.expect(4) {
				if n := c.U32(); n > 0 && *l.entries == nil {
					*l.entries = make([]LeveledEntry, 0, min(n, 1024))
				}
			}
		case l.entryTag:
			*l.entries = append(*l.entries, LeveledEntry{ID: c.str()})
		case tagINTV:
			entries := *l.entries
			if len(entries) == 0 {
				return c.fail(errs.ErrOrphanChunk)
			}
			if c.expect(2) {
				entries[len(entries)-1].Level = c.U16()
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (l leveledList) encode(w *stream.Writer, deleted bool) error {
	writeID(w, tagNAME, *l.id)
	writeU32(w, tagDATA, uint32(*l.flags))
	writeU8(w, tagNNAM, *l.chanceNone)
	if len(*l.entries) > 0 {
		writeU32(w, tagINDX, uint32(len(*l.entries)))
		for _, e := range *l.entries {
			writeID(w, l.entryTag, e.ID)
			w.Chunk(tagINTV, 2, func(w *stream.Writer) { w.U16(e.Level) })
		}
	}
	writeDeleted(w, deleted)

	return w.Err()
}

// LeveledItem is a leveled item list (LEVI).
type LeveledItem struct {
	Base
	ID           string
	LeveledFlags LeveledFlags
	ChanceNone   uint8
	Items        []LeveledEntry
}

func (*LeveledItem) Tag() format.Tag    { return TagLEVI }
func (*LeveledItem) TypeName() string   { return "LeveledItem" }
func (m *LeveledItem) EditorID() string { return m.ID }

func (m *LeveledItem) layout() leveledList {
	return leveledList{&m.ID, &m.LeveledFlags, &m.ChanceNone, &m.Items, tagINAM}
}

func (m *LeveledItem) decode(d *decoder, r *stream.Reader) error { return m.layout().decode(d, r) }
func (m *LeveledItem) encode(w *stream.Writer) error           { return m.layout().encode(w, m.Deleted()) }

// LeveledCreature is a leveled creature list (LEVC).
type LeveledCreature struct {
	Base
	ID           string
	LeveledFlags LeveledFlags
	ChanceNone   uint8
	Creatures    []LeveledEntry
}

func (*LeveledCreature) Tag() format.Tag    { return TagLEVC }
func (*LeveledCreature) TypeName() string   { return "LeveledCreature" }
func (m *LeveledCreature) EditorID() string { return m.ID }

func (m *LeveledCreature) layout() leveledList {
	return leveledList{&m.ID, &m.LeveledFlags, &m.ChanceNone, &m.Creatures, tagCNAM}
}

func (m *LeveledCreature) decode(d *decoder, r *stream.Reader) error {
	return m.layout().decode(d, r)
}

func (m *LeveledCreature) encode(w *stream.Writer) error {
	return m.layout().encode(w, m.Deleted())
}
