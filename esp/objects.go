package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	lightDataSize    = 24
	bodypartDataSize = 4
)

// Static is a scenery object without behavior (STAT).
type Static struct {
	Base
	ID   string
	Mesh string
}

func (*Static) Tag() format.Tag    { return TagSTAT }
func (*Static) TypeName() string   { return "Static" }
func (m *Static) EditorID() string { return m.ID }

func (m *Static) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Static) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Door is a door or load door (DOOR).
type Door struct {
	Base
	ID         string
	Name       string
	Mesh       string
	Script     string
	OpenSound  string
	CloseSound string
}

func (*Door) Tag() format.Tag    { return TagDOOR }
func (*Door) TypeName() string   { return "Door" }
func (m *Door) EditorID() string { return m.ID }

func (m *Door) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagSCRI:
			m.Script = c.str()
		case tagSNAM:
			m.OpenSound = c.str()
		case tagANAM:
			m.CloseSound = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Door) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagSNAM, m.OpenSound)
	writeString(w, tagANAM, m.CloseSound)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Activator is an object that runs a script when activated (ACTI).
type Activator struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
}

func (*Activator) Tag() format.Tag    { return TagACTI }
func (*Activator) TypeName() string   { return "Activator" }
func (m *Activator) EditorID() string { return m.ID }

func (m *Activator) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagSCRI:
			m.Script = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Activator) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagSCRI, m.Script)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Container is a chest, barrel or other item holder (CONT).
type Container struct {
	Base
	ID             string
	Name           string
	Mesh           string
	Script         string
	Encumbrance    float32
	ContainerFlags ContainerFlags
	Inventory      []InventoryItem
}

func (*Container) Tag() format.Tag    { return TagCONT }
func (*Container) TypeName() string   { return "Container" }
func (m *Container) EditorID() string { return m.ID }

func (m *Container) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagCNDT:
			if c.expect(4) {
				m.Encumbrance = c.F32()
			}
		case tagFLAG:
			if c.expect(4) {
				m.ContainerFlags = stream.FlagsU32[ContainerFlags](c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagNPCO:
			m.Inventory = appendInventoryItem(c, m.Inventory)
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Container) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeF32(w, tagCNDT, m.Encumbrance)
	writeU32(w, tagFLAG, uint32(m.ContainerFlags))
	writeString(w, tagSCRI, m.Script)
	writeInventory(w, m.Inventory)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Light is a light source, carryable or not (LIGH).
type Light struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Sound  string
	Data   LightData
}

// LightData is the LHDT data block. Time is the burn time in seconds, -1
// for infinite.
type LightData struct {
	Weight float32
	Value  uint32
	Time   int32
	Radius uint32
	Color  [4]uint8
	Flags  LightFlags
}

func (d *LightData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Time = r.I32()
	d.Radius = r.U32()
	r.ReadFull(d.Color[:])
	d.Flags = stream.FlagsU32[LightFlags](r)
}

func (d *LightData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.I32(d.Time)
	w.U32(d.Radius)
	w.Raw(d.Color[:])
	w.U32(uint32(d.Flags))
}

func (*Light) Tag() format.Tag    { return TagLIGH }
func (*Light) TypeName() string   { return "Light" }
func (m *Light) EditorID() string { return m.ID }

func (m *Light) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagITEX:
			m.Icon = c.str()
		case tagLHDT:
			if c.expect(lightDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagSNAM:
			m.Sound = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Light) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagITEX, m.Icon)
	w.Chunk(tagLHDT, lightDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagSNAM, m.Sound)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Bodypart is a body part mesh used by races, armor and clothing (BODY).
type Bodypart struct {
	Base
	ID   string
	Race string
	Mesh string
	Data BodypartData
}

// BodypartData is the BYDT data block.
type BodypartData struct {
	Part    BodypartID
	Vampire bool
	Flags   BodypartFlags
	Type    BodypartType
}

func (d *BodypartData) decode(r *stream.Reader) {
	d.Part = stream.EnumU8[BodypartID](r)
	d.Vampire = r.Bool()
	d.Flags = stream.FlagsU8[BodypartFlags](r)
	d.Type = stream.EnumU8[BodypartType](r)
}

func (d *BodypartData) encode(w *stream.Writer) {
	w.U8(uint8(d.Part))
	w.Bool(d.Vampire)
	w.U8(uint8(d.Flags))
	w.U8(uint8(d.Type))
}

func (*Bodypart) Tag() format.Tag    { return TagBODY }
func (*Bodypart) TypeName() string   { return "Bodypart" }
func (m *Bodypart) EditorID() string { return m.ID }

func (m *Bodypart) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Race = c.str()
		case tagBYDT:
			if c.expect(bodypartDataSize) {
				m.Data.decode(c.Reader)
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Bodypart) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Race)
	w.Chunk(tagBYDT, bodypartDataSize, m.Data.encode)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
