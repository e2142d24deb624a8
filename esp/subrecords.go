package esp

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

// Fixed chunk sizes of the shared sub-records.
const (
	effectSize            = 24
	aiDataSize            = 12
	aiTravelSize          = 16
	aiWanderSize          = 14
	aiEscortSize          = 48
	aiActivateSize        = 33
	travelDestinationSize = 24
	inventoryItemSize     = 36
)

// Effect is one entry of a spell, enchantment or potion effect list.
type Effect struct {
	MagicEffect  EffectID
	Skill        SkillID
	Attribute    AttributeID
	Range        EffectRange
	Area         uint32
	Duration     uint32
	MinMagnitude uint32
	MaxMagnitude uint32
}

func (e *Effect) decode(r *stream.Reader) {
	e.MagicEffect = stream.EnumI16[EffectID](r)
	e.Skill = stream.EnumI8[SkillID](r)
	e.Attribute = stream.EnumI8[AttributeID](r)
	e.Range = stream.EnumU32[EffectRange](r)
	e.Area = r.U32()
	e.Duration = r.U32()
	e.MinMagnitude = r.U32()
	e.MaxMagnitude = r.U32()
}

func (e *Effect) encode(w *stream.Writer) {
	w.I16(int16(e.MagicEffect))
	w.I8(int8(e.Skill))
	w.I8(int8(e.Attribute))
	w.U32(uint32(e.Range))
	w.U32(e.Area)
	w.U32(e.Duration)
	w.U32(e.MinMagnitude)
	w.U32(e.MaxMagnitude)
}

func appendEffect(c *chunk, effects []Effect) []Effect {
	if !c.expect(effectSize) {
		return effects
	}

	var e Effect
	e.decode(c.Reader)

	return append(effects, e)
}

func writeEffects(w *stream.Writer, effects []Effect) {
	for i := range effects {
		w.Chunk(tagENAM, effectSize, effects[i].encode)
	}
}

// BipedObject binds an armor or clothing piece to a body slot, with the body
// part meshes used for each sex.
type BipedObject struct {
	Type           BipedObjectType
	MaleBodypart   string
	FemaleBodypart string
}

// decodeBipedChunk handles INDX, BNAM and CNAM. BNAM and CNAM refer to the
// most recent INDX.
func decodeBipedChunk(c *chunk, objects []BipedObject) ([]BipedObject, error) {
	switch c.tag {
	case tagINDX:
		if c.expect(1) {
			objects = append(objects, BipedObject{Type: stream.EnumU8[BipedObjectType](c.Reader)})
		}
	case tagBNAM, tagCNAM:
		if len(objects) == 0 {
			return objects, c.fail(errs.ErrOrphanChunk)
		}
		last := &objects[len(objects)-1]
		if c.tag == tagBNAM {
			last.MaleBodypart = c.str()
		} else {
			last.FemaleBodypart = c.str()
		}
	default:
		return objects, errUnhandled
	}

	return objects, nil
}

func writeBipedObjects(w *stream.Writer, objects []BipedObject) {
	for _, o := range objects {
		writeU8(w, tagINDX, uint8(o.Type))
		writeString(w, tagBNAM, o.MaleBodypart)
		writeString(w, tagCNAM, o.FemaleBodypart)
	}
}

// InventoryItem is a stack of items carried by an actor or container. A
// negative count marks a restocking item.
type InventoryItem struct {
	Count int32
	ID    string
}

func appendInventoryItem(c *chunk, items []InventoryItem) []InventoryItem {
	if !c.expect(inventoryItemSize) {
		return items
	}

	return append(items, InventoryItem{
		Count: c.I32(),
		ID:    c.FixedString(stream.IDLength),
	})
}

func writeInventory(w *stream.Writer, items []InventoryItem) {
	for _, item := range items {
		w.Chunk(tagNPCO, inventoryItemSize, func(w *stream.Writer) {
			w.I32(item.Count)
			w.FixedString(item.ID, stream.IDLength)
		})
	}
}

func writeSpells(w *stream.Writer, spells []string) {
	for _, s := range spells {
		writeFixedString(w, tagNPCS, s, stream.IDLength)
	}
}

// AiData holds the AI attitude settings of an actor.
type AiData struct {
	Hello    uint16
	Fight    uint8
	Flee     uint8
	Alarm    uint8
	Unknown  [3]uint8
	Services ServiceFlags
}

func (a *AiData) decode(r *stream.Reader) {
	a.Hello = r.U16()
	a.Fight = r.U8()
	a.Flee = r.U8()
	a.Alarm = r.U8()
	r.ReadFull(a.Unknown[:])
	a.Services = stream.FlagsU32[ServiceFlags](r)
}

func (a *AiData) encode(w *stream.Writer) {
	w.U16(a.Hello)
	w.U8(a.Fight)
	w.U8(a.Flee)
	w.U8(a.Alarm)
	w.Raw(a.Unknown[:])
	w.U32(uint32(a.Services))
}

// TravelDestination is a travel service destination. Cell is empty for
// exterior destinations.
type TravelDestination struct {
	Position [3]float32
	Rotation [3]float32
	Cell     string
}

func (t *TravelDestination) decode(r *stream.Reader) {
	for i := range t.Position {
		t.Position[i] = r.F32()
	}
	for i := range t.Rotation {
		t.Rotation[i] = r.F32()
	}
}

func (t *TravelDestination) encode(w *stream.Writer) {
	for _, v := range t.Position {
		w.F32(v)
	}
	for _, v := range t.Rotation {
		w.F32(v)
	}
}

func writeTravelDestinations(w *stream.Writer, dests []TravelDestination) {
	for i := range dests {
		w.Chunk(tagDODT, travelDestinationSize, dests[i].encode)
		writeString(w, tagDNAM, dests[i].Cell)
	}
}

// AiPackage is one entry of an actor's AI package list. The implementations
// are AiTravel, AiWander, AiEscort, AiFollow and AiActivate.
type AiPackage interface {
	aiPackage()
}

// AiTravel sends the actor to a location.
type AiTravel struct {
	Location [3]float32
	Reset    bool
}

// AiWander lets the actor wander around its position.
type AiWander struct {
	Distance uint16
	Duration uint16
	GameHour uint8
	Idle     [8]uint8
	Reset    bool
}

// AiEscort makes the actor escort Target to Location. Cell is empty for
// exterior locations.
type AiEscort struct {
	Location [3]float32
	Duration uint16
	Target   string
	Reset    bool
	Cell     string
}

// AiFollow makes the actor follow Target. It shares the AiEscort layout.
type AiFollow struct {
	Location [3]float32
	Duration uint16
	Target   string
	Reset    bool
	Cell     string
}

// AiActivate makes the actor activate Target.
type AiActivate struct {
	Target string
	Reset  bool
}

func (*AiTravel) aiPackage()   {}
func (*AiWander) aiPackage()   {}
func (*AiEscort) aiPackage()   {}
func (*AiFollow) aiPackage()   {}
func (*AiActivate) aiPackage() {}

func readLocation(r *stream.Reader) [3]float32 {
	return [3]float32{r.F32(), r.F32(), r.F32()}
}

func writeLocation(w *stream.Writer, v [3]float32) {
	w.F32(v[0])
	w.F32(v[1])
	w.F32(v[2])
}

// decodeAiChunk handles AI_T, AI_W, AI_E, AI_F, AI_A and the CNDT cell name
// that may follow an escort or follow package.
func decodeAiChunk(c *chunk, packages []AiPackage) ([]AiPackage, error) {
	switch c.tag {
	case tagAI_T:
		if c.expect(aiTravelSize) {
			p := &AiTravel{Location: readLocation(c.Reader), Reset: c.Bool()}
			c.Skip(3)
			packages = append(packages, p)
		}
	case tagAI_W:
		if c.expect(aiWanderSize) {
			p := &AiWander{Distance: c.U16(), Duration: c.U16(), GameHour: c.U8()}
			c.ReadFull(p.Idle[:])
			p.Reset = c.Bool()
			packages = append(packages, p)
		}
	case tagAI_E:
		if c.expect(aiEscortSize) {
			p := &AiEscort{Location: readLocation(c.Reader), Duration: c.U16()}
			p.Target = c.FixedString(stream.IDLength)
			p.Reset = c.Bool()
			c.Skip(1)
			packages = append(packages, p)
		}
	case tagAI_F:
		if c.expect(aiEscortSize) {
			p := &AiFollow{Location: readLocation(c.Reader), Duration: c.U16()}
			p.Target = c.FixedString(stream.IDLength)
			p.Reset = c.Bool()
			c.Skip(1)
			packages = append(packages, p)
		}
	case tagAI_A:
		if c.expect(aiActivateSize) {
			packages = append(packages, &AiActivate{Target: c.FixedString(stream.IDLength), Reset: c.Bool()})
		}
	case tagCNDT:
		if len(packages) == 0 {
			return packages, c.fail(errs.ErrOrphanChunk)
		}
		switch p := packages[len(packages)-1].(type) {
		case *AiEscort:
			p.Cell = c.str()
		case *AiFollow:
			p.Cell = c.str()
		default:
			return packages, c.fail(errs.ErrOrphanChunk)
		}
	default:
		return packages, errUnhandled
	}

	return packages, nil
}

func writeAiPackages(w *stream.Writer, packages []AiPackage) {
	for i, pkg := range packages {
		if pkg == nil || reflect.ValueOf(pkg).IsNil() {
			w.Fail(fmt.Errorf("%w: nil AI package at %d", errs.ErrEncodeFailure, i))
			return
		}
		switch p := pkg.(type) {
		case *AiTravel:
			w.Chunk(tagAI_T, aiTravelSize, func(w *stream.Writer) {
				writeLocation(w, p.Location)
				w.Bool(p.Reset)
				w.Zeros(3)
			})
		case *AiWander:
			w.Chunk(tagAI_W, aiWanderSize, func(w *stream.Writer) {
				w.U16(p.Distance)
				w.U16(p.Duration)
				w.U8(p.GameHour)
				w.Raw(p.Idle[:])
				w.Bool(p.Reset)
			})
		case *AiEscort:
			writeEscort(w, tagAI_E, p.Location, p.Duration, p.Target, p.Reset)
			writeString(w, tagCNDT, p.Cell)
		case *AiFollow:
			writeEscort(w, tagAI_F, p.Location, p.Duration, p.Target, p.Reset)
			writeString(w, tagCNDT, p.Cell)
		case *AiActivate:
			w.Chunk(tagAI_A, aiActivateSize, func(w *stream.Writer) {
				w.FixedString(p.Target, stream.IDLength)
				w.Bool(p.Reset)
			})
		}
	}
}

func writeEscort(w *stream.Writer, tag format.Tag, location [3]float32, duration uint16, target string, reset bool) {
	w.Chunk(tag, aiEscortSize, func(w *stream.Writer) {
		writeLocation(w, location)
		w.U16(duration)
		w.FixedString(target, stream.IDLength)
		w.Bool(reset)
		w.Zeros(1)
	})
}

// actorAi groups the AI chunks shared by creatures and NPCs.
type actorAi struct {
	data         *AiData
	destinations *[]TravelDestination
	packages     *[]AiPackage
}

// decode handles AIDT, DODT, DNAM and the AI package chunks.
func (a actorAi) decode(c *chunk) error {
	switch c.tag {
	case tagAIDT:
		if c.expect(aiDataSize) {
			a.data.decode(c.Reader)
		}
	case tagDODT:
		if c.expect(travelDestinationSize) {
			var t TravelDestination
			t.decode(c.Reader)
			*a.destinations = append(*a.destinations, t)
		}
	case tagDNAM:
		dests := *a.destinations
		if len(dests) == 0 {
			return c.fail(errs.ErrOrphanChunk)
		}
		dests[len(dests)-1].Cell = c.str()
	default:
		packages, err := decodeAiChunk(c, *a.packages)
		*a.packages = packages

		return err
	}

	return nil
}

func (a actorAi) encode(w *stream.Writer) {
	w.Chunk(tagAIDT, aiDataSize, a.data.encode)
	writeTravelDestinations(w, *a.destinations)
	writeAiPackages(w, *a.packages)
}
