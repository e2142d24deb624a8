package esp

import (
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const headerDataSize = 300

// Header is the TES3 record opening every plugin.
type Header struct {
	Base
	Version     float32
	FileType    FileType
	Author      string
	Description string
	NumObjects  uint32
	Masters     []Master
}

// Master is a plugin this plugin depends on, with the size the master file
// had when the dependency was recorded.
type Master struct {
	Name string
	Size uint64
}

func (*Header) Tag() format.Tag  { return TagTES3 }
func (*Header) TypeName() string { return "Header" }

// EditorID returns an empty string: the header is not keyed.
func (*Header) EditorID() string { return "" }

func (m *Header) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagHEDR:
			if c.expect(headerDataSize) && d.claim(c) {
				m.Version = c.F32()
				m.FileType = stream.EnumU32[FileType](c.Reader)
				m.Author = c.FixedString(stream.IDLength)
				m.Description = c.FixedString(stream.TextLength)
				m.NumObjects = c.U32()
			}
		case tagMAST:
			m.Masters = append(m.Masters, Master{Name: c.str()})
		case tagDATA:
			if len(m.Masters) == 0 {
				return c.fail(errs.ErrOrphanChunk)
			}
			if c.expect(8) {
				m.Masters[len(m.Masters)-1].Size = c.U64()
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Header) encode(w *stream.Writer) error {
	w.Chunk(tagHEDR, headerDataSize, func(w *stream.Writer) {
		w.F32(m.Version)
		w.U32(uint32(m.FileType))
		w.FixedString(m.Author, stream.IDLength)
		w.FixedString(m.Description, stream.TextLength)
		w.U32(m.NumObjects)
	})
	for _, master := range m.Masters {
		writeID(w, tagMAST, master.Name)
		w.Chunk(tagDATA, 8, func(w *stream.Writer) { w.U64(master.Size) })
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}
