package sqlinfo

import (
	"strings"

	"github.com/arloliu/tes3/esp"
)

// Join table names.
const (
	JoinEffects            = "JOIN_EFFECTS"
	JoinInventory          = "JOIN_INVENTORY"
	JoinSpells             = "JOIN_SPELLS"
	JoinBipedObjects       = "JOIN_BIPED_OBJECTS"
	JoinAiPackages         = "JOIN_AI_PACKAGES"
	JoinTravelDestinations = "JOIN_TRAVEL_DESTINATIONS"
)

// JoinRow is one row of a join table.
type JoinRow struct {
	Table  string
	Values []any
}

// Every join table starts with these columns. parent_id is the lower-cased
// editor id of the owning record.
var joinKey = []Column{
	{Name: "parent_tag", Type: "TEXT"},
	{Name: "parent_id", Type: "TEXT"},
	{Name: ColumnMod, Type: "TEXT"},
	{Name: "position", Type: "INTEGER"},
}

func joinTable(name string, fks []ForeignKey, columns ...Column) Table {
	return Table{
		Name:        name,
		Columns:     append(append([]Column(nil), joinKey...), columns...),
		ForeignKeys: fks,
	}
}

var joinTables = []Table{
	joinTable(JoinEffects, nil,
		Column{Name: "magic_effect", Type: "TEXT"},
		Column{Name: "skill", Type: "TEXT"},
		Column{Name: "attribute", Type: "TEXT"},
		Column{Name: "range", Type: "TEXT"},
		Column{Name: "area", Type: "INTEGER"},
		Column{Name: "duration", Type: "INTEGER"},
		Column{Name: "min_magnitude", Type: "INTEGER"},
		Column{Name: "max_magnitude", Type: "INTEGER"},
	),
	joinTable(JoinInventory, nil,
		Column{Name: "item_id", Type: "TEXT"},
		Column{Name: "count", Type: "INTEGER"},
	),
	joinTable(JoinSpells, []ForeignKey{{Column: "spell_id", Table: esp.TagSPEL.String()}},
		Column{Name: "spell_id", Type: "TEXT"},
	),
	joinTable(JoinBipedObjects, []ForeignKey{
		{Column: "male_bodypart", Table: esp.TagBODY.String()},
		{Column: "female_bodypart", Table: esp.TagBODY.String()},
	},
		Column{Name: "type", Type: "TEXT"},
		Column{Name: "male_bodypart", Type: "TEXT"},
		Column{Name: "female_bodypart", Type: "TEXT"},
	),
	joinTable(JoinAiPackages, nil,
		Column{Name: "package", Type: "TEXT"},
		Column{Name: "target", Type: "TEXT"},
		Column{Name: "cell", Type: "TEXT"},
		Column{Name: "location_x", Type: "REAL"},
		Column{Name: "location_y", Type: "REAL"},
		Column{Name: "location_z", Type: "REAL"},
		Column{Name: "distance", Type: "INTEGER"},
		Column{Name: "duration", Type: "INTEGER"},
		Column{Name: "game_hour", Type: "INTEGER"},
		Column{Name: "reset", Type: "INTEGER"},
	),
	joinTable(JoinTravelDestinations, nil,
		Column{Name: "cell", Type: "TEXT"},
		Column{Name: "position_x", Type: "REAL"},
		Column{Name: "position_y", Type: "REAL"},
		Column{Name: "position_z", Type: "REAL"},
		Column{Name: "rotation_x", Type: "REAL"},
		Column{Name: "rotation_y", Type: "REAL"},
		Column{Name: "rotation_z", Type: "REAL"},
	),
}

// JoinTables returns the join table schemas.
func JoinTables() []Table {
	return append([]Table(nil), joinTables...)
}

// JoinRows returns the join table rows of the repeated sub-structures of
// rec, in slice order. Records without such data yield no rows.
func JoinRows(mod string, rec esp.Record) []JoinRow {
	if rec == nil {
		return nil
	}

	j := joiner{mod: mod, tag: rec.Tag().String(), parent: strings.ToLower(rec.EditorID())}
	switch m := rec.(type) {
	case *esp.Spell:
		j.effects(m.Effects)
	case *esp.Enchanting:
		j.effects(m.Effects)
	case *esp.Alchemy:
		j.effects(m.Effects)
	case *esp.Armor:
		j.bipedObjects(m.BipedObjects)
	case *esp.Clothing:
		j.bipedObjects(m.BipedObjects)
	case *esp.Container:
		j.inventory(m.Inventory)
	case *esp.Race:
		j.spells(m.Spells)
	case *esp.Birthsign:
		j.spells(m.Spells)
	case *esp.Creature:
		j.inventory(m.Inventory)
		j.spells(m.Spells)
		j.travel(m.TravelDestinations)
		j.packages(m.AiPackages)
	case *esp.Npc:
		j.inventory(m.Inventory)
		j.spells(m.Spells)
		j.travel(m.TravelDestinations)
		j.packages(m.AiPackages)
	}

	return j.rows
}

type joiner struct {
	mod, tag, parent string
	rows             []JoinRow
}

func (j *joiner) add(table string, position int, values ...any) {
	row := append([]any{j.tag, j.parent, j.mod, int64(position)}, values...)
	j.rows = append(j.rows, JoinRow{Table: table, Values: row})
}

func (j *joiner) effects(effects []esp.Effect) {
	for i, e := range effects {
		j.add(JoinEffects, i,
			e.MagicEffect.String(), e.Skill.String(), e.Attribute.String(), e.Range.String(),
			int64(e.Area), int64(e.Duration), int64(e.MinMagnitude), int64(e.MaxMagnitude))
	}
}

func (j *joiner) inventory(items []esp.InventoryItem) {
	for i, item := range items {
		j.add(JoinInventory, i, item.ID, int64(item.Count))
	}
}

func (j *joiner) spells(spells []string) {
	for i, id := range spells {
		j.add(JoinSpells, i, id)
	}
}

func (j *joiner) bipedObjects(objects []esp.BipedObject) {
	for i, o := range objects {
		j.add(JoinBipedObjects, i, o.Type.String(), nullable(o.MaleBodypart), nullable(o.FemaleBodypart))
	}
}

func (j *joiner) travel(destinations []esp.TravelDestination) {
	for i, d := range destinations {
		j.add(JoinTravelDestinations, i, d.Cell,
			float64(d.Position[0]), float64(d.Position[1]), float64(d.Position[2]),
			float64(d.Rotation[0]), float64(d.Rotation[1]), float64(d.Rotation[2]))
	}
}

func (j *joiner) packages(packages []esp.AiPackage) {
	for i, p := range packages {
		var (
			name, target, cell       string
			location                 [3]float32
			distance, duration, hour int64
			reset                    bool
		)
		switch p := p.(type) {
		case *esp.AiTravel:
			name, location, reset = "Travel", p.Location, p.Reset
		case *esp.AiWander:
			name, distance, duration, hour, reset = "Wander", int64(p.Distance), int64(p.Duration), int64(p.GameHour), p.Reset
		case *esp.AiEscort:
			name, location, duration, target, cell, reset = "Escort", p.Location, int64(p.Duration), p.Target, p.Cell, p.Reset
		case *esp.AiFollow:
			name, location, duration, target, cell, reset = "Follow", p.Location, int64(p.Duration), p.Target, p.Cell, p.Reset
		case *esp.AiActivate:
			name, target, reset = "Activate", p.Target, p.Reset
		default:
			continue
		}
		j.add(JoinAiPackages, i, name, target, cell,
			float64(location[0]), float64(location[1]), float64(location[2]),
			distance, duration, hour, boolInt(reset))
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
