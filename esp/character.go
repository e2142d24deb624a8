package esp

import (
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	classDataSize   = 60
	factionDataSize = 240
	raceDataSize    = 140
	skillDataSize   = 24
)

// Class is a character class (CLAS).
type Class struct {
	Base
	ID          string
	Name        string
	Description string
	Data        ClassData
}

// ClassData is the CLDT data block. Minor and major skills are interleaved
// on disk.
type ClassData struct {
	Attributes     [2]AttributeID
	Specialization Specialization
	MinorSkills    [5]SkillID
	MajorSkills    [5]SkillID
	Flags          ClassFlags
	Services       ServiceFlags
}

func (d *ClassData) decode(r *stream.Reader) {
	for i := range d.Attributes {
		d.Attributes[i] = stream.EnumI32[AttributeID](r)
	}
	d.Specialization = stream.EnumU32[Specialization](r)
	for i := range d.MinorSkills {
		d.MinorSkills[i] = stream.EnumI32[SkillID](r)
		d.MajorSkills[i] = stream.EnumI32[SkillID](r)
	}
	d.Flags = stream.FlagsU32[ClassFlags](r)
	d.Services = stream.FlagsU32[ServiceFlags](r)
}

func (d *ClassData) encode(w *stream.Writer) {
	for _, a := range d.Attributes {
		w.I32(int32(a))
	}
	w.U32(uint32(d.Specialization))
	for i := range d.MinorSkills {
		w.I32(int32(d.MinorSkills[i]))
		w.I32(int32(d.MajorSkills[i]))
	}
	w.U32(uint32(d.Flags))
	w.U32(uint32(d.Services))
}

func (*Class) Tag() format.Tag    { return TagCLAS }
func (*Class) TypeName() string   { return "Class" }
func (m *Class) EditorID() string { return m.ID }

func (m *Class) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagCLDT:
			if c.expect(classDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagDESC:
			m.Description = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Class) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagCLDT, classDataSize, m.Data.encode)
	writeString(w, tagDESC, m.Description)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Faction is a joinable faction (FACT).
type Faction struct {
	Base
	ID        string
	Name      string
	RankNames []string
	Reactions []FactionReaction
	Data      FactionData
}

// FactionData is the FADT data block. Requirements holds one entry per rank.
type FactionData struct {
	FavoredAttributes [2]AttributeID
	Requirements      [10]FactionRequirement
	FavoredSkills     [7]SkillID
	Flags             FactionFlags
}

// FactionRequirement lists the minimum values needed to reach a rank.
type FactionRequirement struct {
	Attributes   [2]int32
	PrimarySkill int32
	FavoredSkill int32
	Reputation   int32
}

// FactionReaction is the disposition modifier towards members of another
// faction.
type FactionReaction struct {
	Faction  string
	Reaction int32
}

func (d *FactionData) decode(r *stream.Reader) {
	for i := range d.FavoredAttributes {
		d.FavoredAttributes[i] = stream.EnumI32[AttributeID](r)
	}
	for i := range d.Requirements {
		req := &d.Requirements[i]
		req.Attributes[0] = r.I32()
		req.Attributes[1] = r.I32()
		req.PrimarySkill = r.I32()
		req.FavoredSkill = r.I32()
		req.Reputation = r.I32()
	}
	for i := range d.FavoredSkills {
		d.FavoredSkills[i] = stream.EnumI32[SkillID](r)
	}
	d.Flags = stream.FlagsU32[FactionFlags](r)
}

func (d *FactionData) encode(w *stream.Writer) {
	for _, a := range d.FavoredAttributes {
		w.I32(int32(a))
	}
	for _, req := range d.Requirements {
		w.I32(req.Attributes[0])
		w.I32(req.Attributes[1])
		w.I32(req.PrimarySkill)
		w.I32(req.FavoredSkill)
		w.I32(req.Reputation)
	}
	for _, s := range d.FavoredSkills {
		w.I32(int32(s))
	}
	w.U32(uint32(d.Flags))
}

func (*Faction) Tag() format.Tag    { return TagFACT }
func (*Faction) TypeName() string   { return "Faction" }
func (m *Faction) EditorID() string { return m.ID }

func (m *Faction) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagRNAM:
			if c.expect(stream.IDLength) {
				m.RankNames = append(m.RankNames, c.FixedString(stream.IDLength))
			}
		case tagFADT:
			if c.expect(factionDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagANAM:
			m.Reactions = append(m.Reactions, FactionReaction{Faction: c.str()})
		case tagINTV:
			if len(m.Reactions) == 0 {
				return c.fail(errs.ErrOrphanChunk)
			}
			if c.expect(4) {
				m.Reactions[len(m.Reactions)-1].Reaction = c.I32()
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Faction) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	for _, name := range m.RankNames {
		writeFixedString(w, tagRNAM, name, stream.IDLength)
	}
	w.Chunk(tagFADT, factionDataSize, m.Data.encode)
	for _, reaction := range m.Reactions {
		writeID(w, tagANAM, reaction.Faction)
		writeI32(w, tagINTV, reaction.Reaction)
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Race is a playable or non-playable race (RACE).
type Race struct {
	Base
	ID          string
	Name        string
	Spells      []string
	Description string
	Data        RaceData
}

// SkillBonus is a racial skill bonus.
type SkillBonus struct {
	Skill SkillID
	Bonus int32
}

// RaceData is the RADT data block. Attribute and size pairs hold the male
// value first.
type RaceData struct {
	SkillBonuses [7]SkillBonus
	Strength     [2]int32
	Intelligence [2]int32
	Willpower    [2]int32
	Agility      [2]int32
	Speed        [2]int32
	Endurance    [2]int32
	Personality  [2]int32
	Luck         [2]int32
	Height       [2]float32
	Weight       [2]float32
	Flags        RaceFlags
}

func (d *RaceData) attributes() []*[2]int32 {
	return []*[2]int32{
		&d.Strength, &d.Intelligence, &d.Willpower, &d.Agility,
		&d.Speed, &d.Endurance, &d.Personality, &d.Luck,
	}
}

func (d *RaceData) decode(r *stream.Reader) {
	for i := range d.SkillBonuses {
		d.SkillBonuses[i].Skill = stream.EnumI32[SkillID](r)
		d.SkillBonuses[i].Bonus = r.I32()
	}
	for _, a := range d.attributes() {
		a[0] = r.I32()
		a[1] = r.I32()
	}
	d.Height = [2]float32{r.F32(), r.F32()}
	d.Weight = [2]float32{r.F32(), r.F32()}
	d.Flags = stream.FlagsU32[RaceFlags](r)
}

func (d *RaceData) encode(w *stream.Writer) {
	for _, b := range d.SkillBonuses {
		w.I32(int32(b.Skill))
		w.I32(b.Bonus)
	}
	for _, a := range d.attributes() {
		w.I32(a[0])
		w.I32(a[1])
	}
	w.F32(d.Height[0])
	w.F32(d.Height[1])
	w.F32(d.Weight[0])
	w.F32(d.Weight[1])
	w.U32(uint32(d.Flags))
}

func (*Race) Tag() format.Tag    { return TagRACE }
func (*Race) TypeName() string   { return "Race" }
func (m *Race) EditorID() string { return m.ID }

func (m *Race) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagRADT:
			if c.expect(raceDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagNPCS:
			if c.expect(stream.IDLength) {
				m.Spells = append(m.Spells, c.FixedString(stream.IDLength))
			}
		case tagDESC:
			m.Description = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Race) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagRADT, raceDataSize, m.Data.encode)
	writeSpells(w, m.Spells)
	writeString(w, tagDESC, m.Description)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Birthsign is a birthsign granting spells (BSGN).
type Birthsign struct {
	Base
	ID          string
	Name        string
	Texture     string
	Description string
	Spells      []string
}

func (*Birthsign) Tag() format.Tag    { return TagBSGN }
func (*Birthsign) TypeName() string   { return "Birthsign" }
func (m *Birthsign) EditorID() string { return m.ID }

func (m *Birthsign) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagTNAM:
			m.Texture = c.str()
		case tagDESC:
			m.Description = c.str()
		case tagNPCS:
			if c.expect(stream.IDLength) {
				m.Spells = append(m.Spells, c.FixedString(stream.IDLength))
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Birthsign) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagTNAM, m.Texture)
	writeString(w, tagDESC, m.Description)
	writeSpells(w, m.Spells)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Skill describes one of the 27 skills (SKIL). It is keyed by its skill id.
type Skill struct {
	Base
	Skill       SkillID
	Description string
	Data        SkillData
}

// SkillData is the SKDT data block. Actions holds the experience gained per
// use for up to four actions.
type SkillData struct {
	GoverningAttribute AttributeID
	Specialization     Specialization
	Actions            [4]float32
}

func (d *SkillData) decode(r *stream.Reader) {
	d.GoverningAttribute = stream.EnumI32[AttributeID](r)
	d.Specialization = stream.EnumU32[Specialization](r)
	for i := range d.Actions {
		d.Actions[i] = r.F32()
	}
}

func (d *SkillData) encode(w *stream.Writer) {
	w.I32(int32(d.GoverningAttribute))
	w.U32(uint32(d.Specialization))
	for _, v := range d.Actions {
		w.F32(v)
	}
}

func (*Skill) Tag() format.Tag    { return TagSKIL }
func (*Skill) TypeName() string   { return "Skill" }
func (m *Skill) EditorID() string { return m.Skill.String() }

func (m *Skill) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagINDX:
			if c.expect(4) && d.claim(c) {
				m.Skill = stream.EnumI32[SkillID](c.Reader)
			}
		case tagSKDT:
			if c.expect(skillDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagDESC:
			m.Description = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Skill) encode(w *stream.Writer) error {
	writeI32(w, tagINDX, int32(m.Skill))
	w.Chunk(tagSKDT, skillDataSize, m.Data.encode)
	writeString(w, tagDESC, m.Description)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
