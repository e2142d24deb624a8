package esp

import (
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const infoDataSize = 12

// Dialogue is a dialogue topic, greeting or journal (DIAL). The responses
// are the DialogueInfo records that follow it in the plugin.
type Dialogue struct {
	Base
	ID   string
	Type DialogueType
}

func (*Dialogue) Tag() format.Tag    { return TagDIAL }
func (*Dialogue) TypeName() string   { return "Dialogue" }
func (m *Dialogue) EditorID() string { return m.ID }

func (m *Dialogue) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagDATA:
			// deleted topics sometimes carry a 4 byte DATA
			if c.size == 1 {
				m.Type = stream.EnumU8[DialogueType](c.Reader)
			} else {
				c.Skip(c.size)
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Dialogue) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeU8(w, tagDATA, uint8(m.Type))
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// DialogueInfo is one response of a dialogue topic (INFO). Responses of a
// topic form a linked list through Prev and Next.
type DialogueInfo struct {
	Base
	ID             string
	Prev           string
	Next           string
	Data           InfoData
	SpeakerID      string
	SpeakerRace    string
	SpeakerClass   string
	SpeakerFaction string
	SpeakerCell    string
	PlayerFaction  string
	SoundPath      string
	Text           string
	Filters        []Filter
	Script         string
	Quest          QuestState
}

// InfoData is the DATA block of a dialogue response.
type InfoData struct {
	Type        DialogueType
	Disposition int32
	SpeakerRank int8
	SpeakerSex  Sex
	PlayerRank  int8
}

// Filter is one condition of a dialogue response. Condition is the raw
// SCVR string encoding the function, comparison and operand name.
type Filter struct {
	Condition string
	Value     FilterValue
}

// FilterValue is the operand a filter compares against. The implementations
// are FilterInt and FilterFloat. A nil value writes no value chunk.
type FilterValue interface {
	filterValue()
}

type (
	FilterInt   int32
	FilterFloat float32
)

func (FilterInt) filterValue()   {}
func (FilterFloat) filterValue() {}

func (*DialogueInfo) Tag() format.Tag    { return TagINFO }
func (*DialogueInfo) TypeName() string   { return "DialogueInfo" }
func (m *DialogueInfo) EditorID() string { return m.ID }

func (d *InfoData) decode(r *stream.Reader) {
	d.Type = stream.EnumU8[DialogueType](r)
	r.Skip(3)
	d.Disposition = r.I32()
	d.SpeakerRank = r.I8()
	d.SpeakerSex = stream.EnumI8[Sex](r)
	d.PlayerRank = r.I8()
	r.Skip(1)
}

func (d *InfoData) encode(w *stream.Writer) {
	w.U8(uint8(d.Type))
	w.Zeros(3)
	w.I32(d.Disposition)
	w.I8(d.SpeakerRank)
	w.I8(int8(d.SpeakerSex))
	w.I8(d.PlayerRank)
	w.Zeros(1)
}

func (m *DialogueInfo) decode(d *decoder, r *stream.Reader) error {
	// pending is the filter waiting for its value chunk
	var pending *Filter

	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagINAM:
			m.ID = d.id(c)
		case tagPNAM:
			m.Prev = c.str()
		case tagNNAM:
			m.Next = c.str()
		case tagDATA:
			if c.expect(infoDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagONAM:
			m.SpeakerID = c.str()
		case tagRNAM:
			m.SpeakerRace = c.str()
		case tagCNAM:
			m.SpeakerClass = c.str()
		case tagFNAM:
			m.SpeakerFaction = c.str()
		case tagANAM:
			m.SpeakerCell = c.str()
		case tagDNAM:
			m.PlayerFaction = c.str()
		case tagSNAM:
			m.SoundPath = c.str()
		case tagNAME:
			m.Text = c.str()
		case tagSCVR:
			m.Filters = append(m.Filters, Filter{Condition: c.str()})
			pending = &m.Filters[len(m.Filters)-1]
		case tagINTV, tagFLTV:
			if pending == nil {
				return c.fail(errs.ErrOrphanChunk)
			}
			if c.expect(4) {
				if c.tag == tagINTV {
					pending.Value = FilterInt(c.I32())
				} else {
					pending.Value = FilterFloat(c.F32())
				}
			}
			pending = nil
		case tagBNAM:
			m.Script = c.str()
		case tagQSTN, tagQSTF, tagQSTR:
			if c.expect(1) {
				c.Skip(1)
				m.Quest = questStates[c.tag]
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

var questStates = map[format.Tag]QuestState{
	tagQSTN: QuestName,
	tagQSTF: QuestFinished,
	tagQSTR: QuestRestart,
}

func (m *DialogueInfo) encode(w *stream.Writer) error {
	writeID(w, tagINAM, m.ID)
	writeID(w, tagPNAM, m.Prev)
	writeID(w, tagNNAM, m.Next)
	w.Chunk(tagDATA, infoDataSize, m.Data.encode)
	writeString(w, tagONAM, m.SpeakerID)
	writeString(w, tagRNAM, m.SpeakerRace)
	writeString(w, tagCNAM, m.SpeakerClass)
	writeString(w, tagFNAM, m.SpeakerFaction)
	writeString(w, tagANAM, m.SpeakerCell)
	writeString(w, tagDNAM, m.PlayerFaction)
	writeString(w, tagSNAM, m.SoundPath)
	writeText(w, tagNAME, m.Text)
	for _, f := range m.Filters {
		p := w.BeginChunk(tagSCVR)
		w.String(f.Condition)
		w.EndChunk(p)
		switch v := f.Value.(type) {
		case FilterInt:
			writeI32(w, tagINTV, int32(v))
		case FilterFloat:
			writeF32(w, tagFLTV, float32(v))
		}
	}
	writeText(w, tagBNAM, m.Script)
	switch m.Quest {
	case QuestName:
		writeU8(w, tagQSTN, 1)
	case QuestFinished:
		writeU8(w, tagQSTF, 1)
	case QuestRestart:
		writeU8(w, tagQSTR, 1)
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}
