package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	magicEffectDataSize = 36
	spellDataSize       = 12
	enchantingDataSize  = 16
	alchemyDataSize     = 12
	ingredientDataSize  = 56
)

// MagicEffect describes one of the built-in magic effects (MGEF). It is
// keyed by its effect id rather than by a NAME chunk.
type MagicEffect struct {
	Base
	Effect      EffectID
	Icon        string
	Texture     string
	BoltSound   string
	CastSound   string
	HitSound    string
	AreaSound   string
	CastVisual  string
	BoltVisual  string
	HitVisual   string
	AreaVisual  string
	Description string
	Data        MagicEffectData
}

// MagicEffectData is the MEDT data block.
type MagicEffectData struct {
	School   MagicSchool
	BaseCost float32
	Flags    MagicEffectFlags
	Color    [3]int32
	Speed    float32
	Size     float32
	SizeCap  float32
}

func (d *MagicEffectData) decode(r *stream.Reader) {
	d.School = stream.EnumU32[MagicSchool](r)
	d.BaseCost = r.F32()
	d.Flags = stream.FlagsU32[MagicEffectFlags](r)
	for i := range d.Color {
		d.Color[i] = r.I32()
	}
	d.Speed = r.F32()
	d.Size = r.F32()
	d.SizeCap = r.F32()
}

func (d *MagicEffectData) encode(w *stream.Writer) {
	w.U32(uint32(d.School))
	w.F32(d.BaseCost)
	w.U32(uint32(d.Flags))
	for _, v := range d.Color {
		w.I32(v)
	}
	w.F32(d.Speed)
	w.F32(d.Size)
	w.F32(d.SizeCap)
}

func (*MagicEffect) Tag() format.Tag    { return TagMGEF }
func (*MagicEffect) TypeName() string   { return "MagicEffect" }
func (m *MagicEffect) EditorID() string { return m.Effect.String() }

func (m *MagicEffect) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagINDX:
			if c.expect(4) && d.claim(c) {
				m.Effect = stream.EnumI32[EffectID](c.Reader)
			}
		case tagMEDT:
			if c.expect(magicEffectDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagITEX:
			m.Icon = c.str()
		case tagPTEX:
			m.Texture = c.str()
		case tagBSND:
			m.BoltSound = c.str()
		case tagCSND:
			m.CastSound = c.str()
		case tagHSND:
			m.HitSound = c.str()
		case tagASND:
			m.AreaSound = c.str()
		case tagCVFX:
			m.CastVisual = c.str()
		case tagBVFX:
			m.BoltVisual = c.str()
		case tagHVFX:
			m.HitVisual = c.str()
		case tagAVFX:
			m.AreaVisual = c.str()
		case tagDESC:
			m.Description = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *MagicEffect) encode(w *stream.Writer) error {
	writeI32(w, tagINDX, int32(m.Effect))
	w.Chunk(tagMEDT, magicEffectDataSize, m.Data.encode)
	writeString(w, tagITEX, m.Icon)
	writeString(w, tagPTEX, m.Texture)
	writeString(w, tagBSND, m.BoltSound)
	writeString(w, tagCSND, m.CastSound)
	writeString(w, tagHSND, m.HitSound)
	writeString(w, tagASND, m.AreaSound)
	writeString(w, tagCVFX, m.CastVisual)
	writeString(w, tagBVFX, m.BoltVisual)
	writeString(w, tagHVFX, m.HitVisual)
	writeString(w, tagAVFX, m.AreaVisual)
	writeString(w, tagDESC, m.Description)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Spell is a spell, ability, disease, curse or power (SPEL).
type Spell struct {
	Base
	ID      string
	Name    string
	Effects []Effect
	Data    SpellData
}

// SpellData is the SPDT data block.
type SpellData struct {
	Type  SpellType
	Cost  uint32
	Flags SpellFlags
}

func (d *SpellData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[SpellType](r)
	d.Cost = r.U32()
	d.Flags = stream.FlagsU32[SpellFlags](r)
}

func (d *SpellData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	w.U32(d.Cost)
	w.U32(uint32(d.Flags))
}

func (*Spell) Tag() format.Tag    { return TagSPEL }
func (*Spell) TypeName() string   { return "Spell" }
func (m *Spell) EditorID() string { return m.ID }

func (m *Spell) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagSPDT:
			if c.expect(spellDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagENAM:
			m.Effects = appendEffect(c, m.Effects)
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Spell) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagSPDT, spellDataSize, m.Data.encode)
	writeEffects(w, m.Effects)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Enchanting is an enchantment applied to an item (ENCH).
type Enchanting struct {
	Base
	ID      string
	Effects []Effect
	Data    EnchantingData
}

// EnchantingData is the ENDT data block.
type EnchantingData struct {
	Type      EnchantType
	Cost      uint32
	MaxCharge uint32
	Flags     EnchantFlags
}

func (d *EnchantingData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[EnchantType](r)
	d.Cost = r.U32()
	d.MaxCharge = r.U32()
	d.Flags = stream.FlagsU32[EnchantFlags](r)
}

func (d *EnchantingData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	w.U32(d.Cost)
	w.U32(d.MaxCharge)
	w.U32(uint32(d.Flags))
}

func (*Enchanting) Tag() format.Tag    { return TagENCH }
func (*Enchanting) TypeName() string   { return "Enchanting" }
func (m *Enchanting) EditorID() string { return m.ID }

func (m *Enchanting) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagENDT:
			if c.expect(enchantingDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagENAM:
			m.Effects = appendEffect(c, m.Effects)
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Enchanting) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	w.Chunk(tagENDT, enchantingDataSize, m.Data.encode)
	writeEffects(w, m.Effects)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Alchemy is a potion (ALCH). The icon is stored in a TEXT chunk.
type Alchemy struct {
	Base
	ID      string
	Name    string
	Mesh    string
	Script  string
	Icon    string
	Effects []Effect
	Data    AlchemyData
}

// AlchemyData is the ALDT data block.
type AlchemyData struct {
	Weight float32
	Value  uint32
	Flags  AlchemyFlags
}

func (d *AlchemyData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	d.Flags = stream.FlagsU32[AlchemyFlags](r)
}

func (d *AlchemyData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	w.U32(uint32(d.Flags))
}

func (*Alchemy) Tag() format.Tag    { return TagALCH }
func (*Alchemy) TypeName() string   { return "Alchemy" }
func (m *Alchemy) EditorID() string { return m.ID }

func (m *Alchemy) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagTEXT:
			m.Icon = c.str()
		case tagSCRI:
			m.Script = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagALDT:
			if c.expect(alchemyDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagENAM:
			m.Effects = appendEffect(c, m.Effects)
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Alchemy) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagTEXT, m.Icon)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagALDT, alchemyDataSize, m.Data.encode)
	writeEffects(w, m.Effects)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Ingredient is an alchemy ingredient (INGR).
type Ingredient struct {
	Base
	ID     string
	Name   string
	Mesh   string
	Script string
	Icon   string
	Data   IngredientData
}

// IngredientData is the IRDT data block. Skills and Attributes only apply to
// effects targeting a skill or an attribute, other slots hold SkillNone and
// AttributeNone.
type IngredientData struct {
	Weight     float32
	Value      uint32
	Effects    [4]EffectID
	Skills     [4]SkillID
	Attributes [4]AttributeID
}

func (d *IngredientData) decode(r *stream.Reader) {
	d.Weight = r.F32()
	d.Value = r.U32()
	for i := range d.Effects {
		d.Effects[i] = stream.EnumI32[EffectID](r)
	}
	for i := range d.Skills {
		d.Skills[i] = stream.EnumI32[SkillID](r)
	}
	for i := range d.Attributes {
		d.Attributes[i] = stream.EnumI32[AttributeID](r)
	}
}

func (d *IngredientData) encode(w *stream.Writer) {
	w.F32(d.Weight)
	w.U32(d.Value)
	for _, v := range d.Effects {
		w.I32(int32(v))
	}
	for _, v := range d.Skills {
		w.I32(int32(v))
	}
	for _, v := range d.Attributes {
		w.I32(int32(v))
	}
}

func (*Ingredient) Tag() format.Tag    { return TagINGR }
func (*Ingredient) TypeName() string   { return "Ingredient" }
func (m *Ingredient) EditorID() string { return m.ID }

func (m *Ingredient) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagIRDT:
			if c.expect(ingredientDataSize) {
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

func (m *Ingredient) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagIRDT, ingredientDataSize, m.Data.encode)
	writeString(w, tagSCRI, m.Script)
	writeString(w, tagITEX, m.Icon)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
