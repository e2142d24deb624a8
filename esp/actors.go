package esp

import (
	"math"

	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	creatureDataSize    = 96
	npcDataSize         = 52
	npcAutoCalcDataSize = 12
)

// Scale bounds accepted by the engine.
const (
	minScale = 0.5
	maxScale = 2.0
)

// Creature is a non-humanoid actor (CREA).
type Creature struct {
	Base
	ID                 string
	Name               string
	Mesh               string
	Script             string
	Sound              string
	Scale              *float32
	CreatureFlags      CreatureFlags
	BloodType          uint8
	Inventory          []InventoryItem
	Spells             []string
	AiData             AiData
	TravelDestinations []TravelDestination
	AiPackages         []AiPackage
	Data               CreatureData
}

// CreatureData is the NPDT data block of a creature. Attacks holds the
// minimum and maximum damage of each of the three attacks.
type CreatureData struct {
	Type         CreatureType
	Level        uint32
	Strength     uint32
	Intelligence uint32
	Willpower    uint32
	Agility      uint32
	Speed        uint32
	Endurance    uint32
	Personality  uint32
	Luck         uint32
	Health       uint32
	Magicka      uint32
	Fatigue      uint32
	Soul         uint32
	Combat       uint32
	Magic        uint32
	Stealth      uint32
	Attacks      [3][2]uint32
	Gold         uint32
}

func (d *CreatureData) stats() []*uint32 {
	return []*uint32{
		&d.Level, &d.Strength, &d.Intelligence, &d.Willpower, &d.Agility, &d.Speed, &d.Endurance,
		&d.Personality, &d.Luck, &d.Health, &d.Magicka, &d.Fatigue, &d.Soul, &d.Combat, &d.Magic,
		&d.Stealth,
	}
}

func (d *CreatureData) decode(r *stream.Reader) {
	d.Type = stream.EnumU32[CreatureType](r)
	for _, v := range d.stats() {
		*v = r.U32()
	}
	for i := range d.Attacks {
		d.Attacks[i] = [2]uint32{r.U32(), r.U32()}
	}
	d.Gold = r.U32()
}

func (d *CreatureData) encode(w *stream.Writer) {
	w.U32(uint32(d.Type))
	for _, v := range d.stats() {
		w.U32(*v)
	}
	for _, a := range d.Attacks {
		w.U32(a[0])
		w.U32(a[1])
	}
	w.U32(d.Gold)
}

func (*Creature) Tag() format.Tag    { return TagCREA }
func (*Creature) TypeName() string   { return "Creature" }
func (m *Creature) EditorID() string { return m.ID }

func (m *Creature) ai() actorAi {
	return actorAi{data: &m.AiData, destinations: &m.TravelDestinations, packages: &m.AiPackages}
}

func (m *Creature) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagCNAM:
			m.Sound = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagSCRI:
			m.Script = c.str()
		case tagNPDT:
			if c.expect(creatureDataSize) {
				m.Data.decode(c.Reader)
			}
		case tagFLAG:
			if c.expect(4) {
				flags, blood := unpackActorFlags(c.U32())
				m.CreatureFlags, m.BloodType = CreatureFlags(flags), blood
			}
		case tagXSCL:
			if c.expect(4) {
				scale := c.F32()
				m.Scale = &scale
			}
		case tagNPCO:
			m.Inventory = appendInventoryItem(c, m.Inventory)
		case tagNPCS:
			if c.expect(stream.IDLength) {
				m.Spells = append(m.Spells, c.FixedString(stream.IDLength))
			}
		default:
			return m.ai().decode(c)
		}

		return nil
	})
}

func (m *Creature) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagCNAM, m.Sound)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagSCRI, m.Script)
	w.Chunk(tagNPDT, creatureDataSize, m.Data.encode)
	writeU32(w, tagFLAG, packActorFlags(uint32(m.CreatureFlags), m.BloodType))
	if scale, ok := clampScale(m.Scale); ok {
		writeF32(w, tagXSCL, scale)
	}
	writeInventory(w, m.Inventory)
	writeSpells(w, m.Spells)
	m.ai().encode(w)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// clampScale clamps a scale override into the engine range. It reports false
// when no XSCL chunk should be written: the scale is absent or equals 1.
func clampScale(scale *float32) (float32, bool) {
	if scale == nil {
		return 0, false
	}

	s := min(max(*scale, minScale), maxScale)
	if math.Abs(float64(s)-1) < 1e-6 {
		return 0, false
	}

	return s, true
}

// Npc is a humanoid actor (NPC_).
type Npc struct {
	Base
	ID                 string
	Name               string
	Mesh               string
	Race               string
	Class              string
	Faction            string
	Head               string
	Hair               string
	Script             string
	NpcFlags           NpcFlags
	BloodType          uint8
	Inventory          []InventoryItem
	Spells             []string
	AiData             AiData
	TravelDestinations []TravelDestination
	AiPackages         []AiPackage
	Data               NpcData
}

// NpcData is the NPDT data block of an NPC. Stats is nil for NPCs whose
// statistics are computed by the engine, which selects the short layout.
type NpcData struct {
	Level       int16
	Disposition uint8
	Reputation  uint8
	Rank        uint8
	Gold        int32
	Stats       *NpcStats
}

// NpcStats holds the explicit statistics of a non-autocalculated NPC.
type NpcStats struct {
	Attributes [8]uint8
	Skills     [27]uint8
	Health     uint16
	Magicka    uint16
	Fatigue    uint16
}

func (d *NpcData) size() int {
	if d.Stats != nil {
		return npcDataSize
	}

	return npcAutoCalcDataSize
}

func (d *NpcData) decode(r *stream.Reader, size int) {
	d.Level = r.I16()
	if size == npcAutoCalcDataSize {
		d.Stats = nil
		d.Disposition = r.U8()
		d.Reputation = r.U8()
		d.Rank = r.U8()
		r.Skip(3)
		d.Gold = r.I32()

		return
	}

	stats := &NpcStats{}
	r.ReadFull(stats.Attributes[:])
	r.ReadFull(stats.Skills[:])
	r.Skip(1)
	stats.Health = r.U16()
	stats.Magicka = r.U16()
	stats.Fatigue = r.U16()
	d.Stats = stats
	d.Disposition = r.U8()
	d.Reputation = r.U8()
	d.Rank = r.U8()
	r.Skip(1)
	d.Gold = r.I32()
}

func (d *NpcData) encode(w *stream.Writer) {
	w.I16(d.Level)
	if d.Stats == nil {
		w.U8(d.Disposition)
		w.U8(d.Reputation)
		w.U8(d.Rank)
		w.Zeros(3)
		w.I32(d.Gold)

		return
	}

	w.Raw(d.Stats.Attributes[:])
	w.Raw(d.Stats.Skills[:])
	w.Zeros(1)
	w.U16(d.Stats.Health)
	w.U16(d.Stats.Magicka)
	w.U16(d.Stats.Fatigue)
	w.U8(d.Disposition)
	w.U8(d.Reputation)
	w.U8(d.Rank)
	w.Zeros(1)
	w.I32(d.Gold)
}

func (*Npc) Tag() format.Tag    { return TagNPC_ }
func (*Npc) TypeName() string   { return "Npc" }
func (m *Npc) EditorID() string { return m.ID }

func (m *Npc) ai() actorAi {
	return actorAi{data: &m.AiData, destinations: &m.TravelDestinations, packages: &m.AiPackages}
}

func (m *Npc) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagMODL:
			m.Mesh = c.str()
		case tagFNAM:
			m.Name = c.str()
		case tagRNAM:
			m.Race = c.str()
		case tagCNAM:
			m.Class = c.str()
		case tagANAM:
			m.Faction = c.str()
		case tagBNAM:
			m.Head = c.str()
		case tagKNAM:
			m.Hair = c.str()
		case tagSCRI:
			m.Script = c.str()
		case tagNPDT:
			if c.size == npcAutoCalcDataSize || c.expect(npcDataSize) {
				m.Data.decode(c.Reader, c.size)
			}
		case tagFLAG:
			if c.expect(4) {
				flags, blood := unpackActorFlags(c.U32())
				m.NpcFlags, m.BloodType = NpcFlags(flags), blood
			}
		case tagNPCO:
			m.Inventory = appendInventoryItem(c, m.Inventory)
		case tagNPCS:
			if c.expect(stream.IDLength) {
				m.Spells = append(m.Spells, c.FixedString(stream.IDLength))
			}
		default:
			return m.ai().decode(c)
		}

		return nil
	})
}

func (m *Npc) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagMODL, m.Mesh)
	writeString(w, tagFNAM, m.Name)
	writeString(w, tagRNAM, m.Race)
	writeString(w, tagCNAM, m.Class)
	writeString(w, tagANAM, m.Faction)
	writeString(w, tagBNAM, m.Head)
	writeString(w, tagKNAM, m.Hair)
	writeString(w, tagSCRI, m.Script)
	w.Chunk(tagNPDT, m.Data.size(), m.Data.encode)
	writeU32(w, tagFLAG, packActorFlags(uint32(m.NpcFlags), m.BloodType))
	writeInventory(w, m.Inventory)
	writeSpells(w, m.Spells)
	m.ai().encode(w)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
