package esp

import (
	"fmt"
	"reflect"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

type kind struct {
	tag    format.Tag
	name   string
	create func() Record
}

// registry lists every record kind in the order the format defines them.
var registry = [...]kind{
	{TagTES3, "Header", func() Record { return &Header{} }},
	{TagGMST, "GameSetting", func() Record { return &GameSetting{} }},
	{TagGLOB, "GlobalVariable", func() Record { return &GlobalVariable{} }},
	{TagCLAS, "Class", func() Record { return &Class{} }},
	{TagFACT, "Faction", func() Record { return &Faction{} }},
	{TagRACE, "Race", func() Record { return &Race{} }},
	{TagSOUN, "Sound", func() Record { return &Sound{} }},
	{TagSNDG, "SoundGen", func() Record { return &SoundGen{} }},
	{TagSKIL, "Skill", func() Record { return &Skill{} }},
	{TagMGEF, "MagicEffect", func() Record { return &MagicEffect{} }},
	{TagSCPT, "Script", func() Record { return &Script{} }},
	{TagREGN, "Region", func() Record { return &Region{} }},
	{TagBSGN, "Birthsign", func() Record { return &Birthsign{} }},
	{TagSSCR, "StartScript", func() Record { return &StartScript{} }},
	{TagLTEX, "LandscapeTexture", func() Record { return &LandscapeTexture{} }},
	{TagSPEL, "Spell", func() Record { return &Spell{} }},
	{TagSTAT, "Static", func() Record { return &Static{} }},
	{TagDOOR, "Door", func() Record { return &Door{} }},
	{TagMISC, "MiscItem", func() Record { return &MiscItem{} }},
	{TagWEAP, "Weapon", func() Record { return &Weapon{} }},
	{TagCONT, "Container", func() Record { return &Container{} }},
	{TagCREA, "Creature", func() Record { return &Creature{} }},
	{TagBODY, "Bodypart", func() Record { return &Bodypart{} }},
	{TagLIGH, "Light", func() Record { return &Light{} }},
	{TagENCH, "Enchanting", func() Record { return &Enchanting{} }},
	{TagNPC_, "Npc", func() Record { return &Npc{} }},
	{TagARMO, "Armor", func() Record { return &Armor{} }},
	{TagCLOT, "Clothing", func() Record { return &Clothing{} }},
	{TagREPA, "RepairItem", func() Record { return &RepairItem{} }},
	{TagACTI, "Activator", func() Record { return &Activator{} }},
	{TagAPPA, "Apparatus", func() Record { return &Apparatus{} }},
	{TagLOCK, "Lockpick", func() Record { return &Lockpick{} }},
	{TagPROB, "Probe", func() Record { return &Probe{} }},
	{TagINGR, "Ingredient", func() Record { return &Ingredient{} }},
	{TagBOOK, "Book", func() Record { return &Book{} }},
	{TagALCH, "Alchemy", func() Record { return &Alchemy{} }},
	{TagLEVI, "LeveledItem", func() Record { return &LeveledItem{} }},
	{TagLEVC, "LeveledCreature", func() Record { return &LeveledCreature{} }},
	{TagCELL, "Cell", func() Record { return &Cell{} }},
	{TagLAND, "Landscape", func() Record { return &Landscape{} }},
	{TagPGRD, "PathGrid", func() Record { return &PathGrid{} }},
	{TagDIAL, "Dialogue", func() Record { return &Dialogue{} }},
	{TagINFO, "DialogueInfo", func() Record { return &DialogueInfo{} }},
}

var kinds = func() map[format.Tag]*kind {
	m := make(map[format.Tag]*kind, len(registry))
	for i := range registry {
		m[registry[i].tag] = &registry[i]
	}

	return m
}()

// TagOf returns the record tag rec is written with.
func TagOf(rec Record) format.Tag {
	return rec.Tag()
}

// NewRecord creates an empty record of the kind identified by tag.
//
// Returns:
//   - Record: A zero value of the matching kind, nil if tag is unknown
//   - bool: Whether tag names a record kind
func NewRecord(tag format.Tag) (Record, bool) {
	k, ok := kinds[tag]
	if !ok {
		return nil, false
	}

	return k.create(), true
}

// DisplayName returns the type name of the record kind identified by tag, or
// the tag itself when it names no kind.
func DisplayName(tag format.Tag) string {
	if k, ok := kinds[tag]; ok {
		return k.name
	}

	return tag.String()
}

// Tags returns the tags of every record kind in format order.
func Tags() []format.Tag {
	tags := make([]format.Tag, len(registry))
	for i := range registry {
		tags[i] = registry[i].tag
	}

	return tags
}

// DecodeRecord reads one framed record from r.
//
// It returns io.EOF, unwrapped, when r holds no more records. In lenient mode
// an unrecognized record is skipped and DecodeRecord returns a nil Record and
// a nil error.
func DecodeRecord(r *stream.Reader, opts ...DecodeOption) (Record, error) {
	d, err := newDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return d.decodeRecord(r)
}

// EncodeRecord appends rec with its record frame to w.
func EncodeRecord(w *stream.Writer, rec Record) error {
	if rec == nil || reflect.ValueOf(rec).IsNil() {
		return w.Fail(fmt.Errorf("%w: nil record", errs.ErrEncodeFailure))
	}
	if _, ok := kinds[rec.Tag()]; !ok {
		return w.Fail(fmt.Errorf("%w: %s", errs.ErrUnknownRecordTag, rec.Tag()))
	}

	return encodeRecord(w, rec)
}
