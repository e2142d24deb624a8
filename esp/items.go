package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	miscItemDataSize   = 12
	weaponDataSize     = 32
	armorDataSize      = 24
	clothingDataSize   = 12
	repairItemDataSize = 16
	apparatusDataSize  = 16
	toolDataSize       = 16
	bookDataSize       = 20
)

// MiscItem is a generic carryable item (MISC).
type MiscItem struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   MiscItemData
}

// MiscItemData is the MCDT data block.
type MiscItemData struct {
	Weight float32
	Value  uint32
	Flags  MiscItemFlags
}

func (d *MiscItemData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Flags = stream.FlagsU32[MiscItemFlags](r)
}

func (d *MiscItemData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U32(uint32(d.Flags))
}

func (*MiscItem) Tag() format.Tag    { return TagMISC }
func (*MiscItem) TypeName() string   { return "MiscItem" }
func (m *MiscItem) EditorID() string { return m.ID }

func (m *MiscItem) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagMCDT:
			if c.expect(miscItemDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagITEX:
			m.Icon = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *MiscItem) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagMCDT, miscItemDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Weapon is a melee weapon, bow or projectile (WEAP).
type Weapon struct {
	Base
	ID         string
	Name       string
	Mesh       string
	Script     string
	Icon       string
	Enchanting string
	Data       WeaponData
}

// WeaponData is the WPDT data block.
type WeaponData struct {
	Weight      float32
	Value       uint32
	Type        WeaponType
	Health      uint16
	Speed       float32
	Reach       float32
	Enchantment uint16
	ChopMin     uint8
	ChopMax     uint8
	SlashMin    uint8
	SlashMax    uint8
	ThrustMin   uint8
	ThrustMax   uint8
	Flags       WeaponFlags
}

func (d *WeaponData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Type = stream.EnumU16[WeaponType](r)
	d.Health = r.U16()
	d.Speed = r.F32()
	d.Reach = r.F32()
	d.Enchantment = r.U16()
	d.ChopMin = r.U8()
	d.ChopMax = r.U8()
	d.SlashMin = r.U8()
	d.SlashMax = r.U8()
	d.ThrustMin = r.U8()
	d.ThrustMax = r.U8()
	d.Flags = stream.FlagsU32[WeaponFlags](r)
}

func (d *WeaponData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U16(uint16(d.Type))
	w.U16(d.Health)
	w.F32(d.Speed)
	w.F32(d.Reach)
	w.U16(d.Enchantment)
	w.U8(d.ChopMin)
	w.U8(d.ChopMax)
	w.U8(d.SlashMin)
	w.U8(d.SlashMax)
	w.U8(d.ThrustMin)
	w.U8(d.ThrustMax)
	w.U32(uint32(d.Flags))
}

func (*Weapon) Tag() format.Tag    { return TagWEAP }
func (*Weapon) TypeName() string   { return "Weapon" }
func (m *Weapon) EditorID() string { return m.ID }

func (m *Weapon) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagWPDT:
			if c.expect(weaponDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagITEX:
			m.Icon = c.str()
		case tagENAM:
			m.Enchanting = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Weapon) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagWPDT, weaponDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeString(w, tagENAM, m.Enchanting)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Armor is a wearable armor piece (ARMO).
type Armor struct {
	Base
	ID           string
	Name         string
	Mesh         string
	Script       string
	Icon         string
	Enchanting   string
	BipedObjects []BipedObject
	Data         ArmorData
}

// ArmorData is the AODT data block.
type ArmorData struct {
	Type        ArmorType
	Weight      float32
	Value       uint32
	Health      uint32
	Enchantment uint32
	ArmorRating uint32
}

func (d *ArmorData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[ArmorType](r)
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Health = r.U32()
	d.Enchantment = r.U32()
	d.ArmorRating = r.U32()
}

func (d *ArmorData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U32(d.Health)
	w.U32(d.Enchantment)
	w.U32(d.ArmorRating)
}

func (*Armor) Tag() format.Tag    { return TagARMO }
func (*Armor) TypeName() string   { return "Armor" }
func (m *Armor) EditorID() string { return m.ID }

func (m *Armor) decode(d *decoder, r *stream.Reader) error {
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
		case tagAODT:
			if c.expect(armorDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagITEX:
			m.Icon = c.str()
		case tagENAM:
			m.Enchanting = c.str()
		default:
			var err error
			m.BipedObjects, err = decodeBipedChunk(c, m.BipedObjects)

			return err
		}

		return nil
	})
}

func (m *Armor) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagSCRI, m.Script)
	w.Chunk(tagAODT, armorDataSize, m.Data.encode)
	writeString(w, tagITEX, m.Icon)
	writeBipedObjects(w, m.BipedObjects)
	writeString(w, tagENAM, m.Enchanting)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Clothing is a wearable clothing piece (CLOT).
type Clothing struct {
	Base
	ID           string
	Name         string
	Mesh         string
	Script       string
	Icon         string
	Enchanting   string
	BipedObjects []BipedObject
	Data         ClothingData
}

// ClothingData is the CTDT data block.
type ClothingData struct {
	Type        ClothingType
	Weight      float32
	Value       uint16
	Enchantment uint16
}

func (d *ClothingData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[ClothingType](r)
	d.Weight = r.F32()
	d.Value = r.U16()
	d.Enchantment = r.U16()
}

func (d *ClothingData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	w.F32(d.Weight)
	w.U16(d.Value)
	w.U16(d.Enchantment)
}

func (*Clothing) Tag() format.Tag    { return TagCLOT }
func (*Clothing) TypeName() string   { return "Clothing" }
func (m *Clothing) EditorID() string { return m.ID }

func (m *Clothing) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagCTDT:
			if c.expect(clothingDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagITEX:
			m.Icon = c.str()
		case tagENAM:
			m.Enchanting = c.str()
		default:
			var err error
			m.BipedObjects, err = decodeBipedChunk(c, m.BipedObjects)

			return err
		}

		return nil
	})
}

func (m *Clothing) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagCTDT, clothingDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeBipedObjects(w, m.BipedObjects)
	writeString(w, tagENAM, m.Enchanting)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// RepairItem is a repair hammer or prongs (REPA).
type RepairItem struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   RepairItemData
}

// RepairItemData is the RIDT data block.
type RepairItemData struct {
	Weight  float32
	Value   uint32
	Uses    uint32
	Quality float32
}

func (d *RepairItemData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Uses = r.U32()
	d.Quality = r.F32()
}

func (d *RepairItemData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U32(d.Uses)
	w.F32(d.Quality)
}

func (*RepairItem) Tag() format.Tag    { return TagREPA }
func (*RepairItem) TypeName() string   { return "RepairItem" }
func (m *RepairItem) EditorID() string { return m.ID }

func (m *RepairItem) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagRIDT:
			if c.expect(repairItemDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagITEX:
			m.Icon = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *RepairItem) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagRIDT, repairItemDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Apparatus is an alchemy apparatus (APPA).
type Apparatus struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   ApparatusData
}

// ApparatusData is the AADT data block.
type ApparatusData struct {
	Type    ApparatusType
	Quality float32
	Weight  float32
	Value   uint32
}

func (d *ApparatusData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[ApparatusType](r)
	d.Quality = r.F32()
	d.Weight = r.F32()
	d.Value = r.U32()
}

func (d *ApparatusData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	w.F32(d.Quality)
	w.F32(d.Weight)
	w.U32(d.Value)
}

func (*Apparatus) Tag() format.Tag    { return TagAPPA }
func (*Apparatus) TypeName() string   { return "Apparatus" }
func (m *Apparatus) EditorID() string { return m.ID }

func (m *Apparatus) decode(d *decoder, r *stream.Reader) error {
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
		case tagAADT:
			if c.expect(apparatusDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagITEX:
			m.Icon = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Apparatus) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagSCRI, m.Script)
	w.Chunk(tagAADT, apparatusDataSize, m.Data.encode)
	writeString(w, tagITEX, m.Icon)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// ToolData is the data block shared by lockpicks (LKDT) and probes (PBDT).
type ToolData struct {
	Weight  float32
	Value   uint32
	Quality float32
	Uses    uint32
}

func (d *ToolData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Quality = r.F32()
	d.Uses = r.U32()
}

func (d *ToolData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.F32(d.Quality)
	w.U32(d.Uses)
}

// tool is the chunk layout shared by Lockpick and Probe.
type tool struct {
	id, name, mesh, script, icon *string
	data                         *ToolData
	dataTag                      format.Tag
}

func (t tool) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			*t.id = d.id(c)
		case tagMODL:
			*t.mesh = c.str()
		case tagFNAM:
			*t.name = c.str()
		case t.dataTag:
			if c.expect(toolDataSize) {
				t.data.decode(c.Reader)
			}
		case tagSCRI:
			*t.script = c.str()
		case tagITEX:
			*t.icon = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (t tool) encode(w *stream.Writer, deleted bool) error {
	writeID(w, tagNAME, *t.id)
	writeString(w, tagMODL, *t.mesh)
	writeString(w, tagFNAM, *t.name)
	w.Chunk(t.dataTag, toolDataSize, t.data.encode)
	writeString(w, tagSCRI, *t.script)
	writeString(w, tagITEX, *t.icon)
	writeDeleted(w, deleted)

	return w.Err()
}

// Lockpick is a lock picking tool (LOCK).
type Lockpick struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   ToolData
}

func (*Lockpick) Tag() format.Tag    { return TagLOCK }
func (*Lockpick) TypeName() string   { return "Lockpick" }
func (m *Lockpick) EditorID() string { return m.ID }

func (m *Lockpick) layout() tool {
	return tool{&m.ID, &m.Name, &m.Mesh, &m.Script, &m.Icon, &m.Data, tagLKDT}
}

func (m *Lockpick) decode(d *decoder, r *stream.Reader) error { return m.layout().decode(d, r) }
func (m *Lockpick) encode(w *stream.Writer) error           { return m.layout().encode(w, m.Deleted()) }

// Probe is a trap disarming tool (PROB).
type Probe struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   ToolData
}

func (*Probe) Tag() format.Tag    { return TagPROB }
func (*Probe) TypeName() string   { return "Probe" }
func (m *Probe) EditorID() string { return m.ID }

func (m *Probe) layout() tool {
	return tool{&m.ID, &m.Name, &m.Mesh, &m.Script, &m.Icon, &m.Data, tagPBDT}
}

func (m *Probe) decode(d *decoder, r *stream.Reader) error { return m.layout().decode(d, r) }
func (m *Probe) encode(w *stream.Writer) error           { return m.layout().encode(w, m.Deleted()) }

// Book is a book or scroll (BOOK).
type Book struct {
	Base
	ID         string
	Name       string
	Mesh       string
	Script     string
	Icon       string
	Enchanting string
	Text       string
	Data       BookData
}

// BookData is the BKDT data block. Skill is SkillNone for books that teach
// nothing.
type BookData struct {
	Weight      float32
	Value       uint32
	Type        BookType
	Skill       SkillID
	Enchantment uint32
}

func (d *BookData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Type = stream.EnumU32[BookType](r)
	d.Skill = stream.EnumI32[SkillID](r)
	d.Enchantment = r.U32()
}

func (d *BookData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U32(uint32(d.Type))
	w.I32(int32(d.Skill))
	w.U32(d.Enchantment)
}

func (*Book) Tag() format.Tag    { return TagBOOK }
func (*Book) TypeName() string   { return "Book" }
func (m *Book) EditorID() string { return m.ID }

func (m *Book) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagBKDT:
			if c.expect(bookDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagSCRI:
			m.Script = c.str()
		case tagITEX:
			m.Icon = c.str()
		case tagTEXT:
			m.Text = c.str()
		case tagENAM:
			m.Enchanting = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Book) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagBKDT, bookDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeText(w, tagTEXT, m.Text)
	writeString(w, tagENAM, m.Enchanting)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
