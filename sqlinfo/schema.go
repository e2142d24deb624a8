// Package sqlinfo describes how records map onto SQL tables.
//
// Each record kind becomes one table named after its tag. The first three
// columns are the editor id, the plugin the row came from and the header
// flags; the rest are the scalar fields listed by inspect.Fields, named
// after their paths in snake case ("data.weight" becomes "data_weight").
// Enums and flags are stored as their display strings. Repeated
// sub-structures such as inventories or spell effects go to join tables
// described by JoinTables.
//
// The package only renders statements and parameter lists; opening a
// database and running them is left to the caller.
package sqlinfo

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/inspect"
)

// Fixed leading columns of every record table.
const (
	ColumnID    = "id"
	ColumnMod   = "mod"
	ColumnFlags = "flags"
)

// references maps a string column to the table whose ids it holds. Empty
// strings in such columns are stored as NULL.
var references = map[string]format.Tag{
	"script":          esp.TagSCPT,
	"enchanting":      esp.TagENCH,
	"race":            esp.TagRACE,
	"class":           esp.TagCLAS,
	"faction":         esp.TagFACT,
	"region":          esp.TagREGN,
	"head":            esp.TagBODY,
	"hair":            esp.TagBODY,
	"creature":        esp.TagCREA,
	"sound":           esp.TagSOUN,
	"open_sound":      esp.TagSOUN,
	"close_sound":     esp.TagSOUN,
	"cast_sound":      esp.TagSOUN,
	"bolt_sound":      esp.TagSOUN,
	"hit_sound":       esp.TagSOUN,
	"area_sound":      esp.TagSOUN,
	"speaker_race":    esp.TagRACE,
	"speaker_class":   esp.TagCLAS,
	"speaker_faction": esp.TagFACT,
	"player_faction":  esp.TagFACT,
}

// CNAM of a creature names the creature whose sound generators it shares.
var referenceOverrides = map[format.Tag]map[string]format.Tag{
	esp.TagCREA: {"sound": esp.TagCREA},
}

func referenceOf(tag format.Tag, column string) (format.Tag, bool) {
	if target, ok := referenceOverrides[tag][column]; ok {
		return target, true
	}
	target, ok := references[column]

	return target, ok
}

type tableEntry struct {
	table Table
	refs  map[int]bool // column index -> empty string stored as NULL
}

var tables sync.Map // format.Tag -> *tableEntry

// Schema returns the table of a record kind.
//
// Parameters:
//   - tag: Record tag, for example esp.TagWEAP
//
// Returns:
//   - Table: Table named after the tag
//   - error: errs.ErrUnknownRecordTag if the tag is not a registered kind
func Schema(tag format.Tag) (Table, error) {
	e, err := entryOf(tag)
	if err != nil {
		return Table{}, err
	}

	return e.table, nil
}

// Schemas returns the tables of every record kind in registry order.
func Schemas() []Table {
	out := make([]Table, 0, len(esp.Tags()))
	for _, tag := range esp.Tags() {
		e, _ := entryOf(tag)
		out = append(out, e.table)
	}

	return out
}

func entryOf(tag format.Tag) (*tableEntry, error) {
	if e, ok := tables.Load(tag); ok {
		return e.(*tableEntry), nil
	}

	rec, ok := esp.NewRecord(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownRecordTag, tag)
	}

	e := &tableEntry{
		table: Table{
			Name: tag.String(),
			Columns: []Column{
				{Name: ColumnID, Type: "TEXT"},
				{Name: ColumnMod, Type: "TEXT"},
				{Name: ColumnFlags, Type: "TEXT"},
			},
			PrimaryKey: ColumnID,
		},
		refs: make(map[int]bool),
	}

	for _, f := range inspect.Fields(rec) {
		if f.Path == "id" || f.Path == "flags" {
			continue
		}

		name := columnName(f.Path)
		e.table.Columns = append(e.table.Columns, Column{Name: name, Type: sqlType(f.Kind), Path: f.Path})

		if target, ok := referenceOf(tag, name); ok && f.Kind == inspect.KindString {
			e.table.ForeignKeys = append(e.table.ForeignKeys, ForeignKey{Column: name, Table: target.String()})
			e.refs[len(e.table.Columns)-1] = true
		}
	}

	actual, _ := tables.LoadOrStore(tag, e)

	return actual.(*tableEntry), nil
}

func sqlType(kind inspect.Kind) string {
	switch kind {
	case inspect.KindString, inspect.KindEnum, inspect.KindFlags:
		return "TEXT"
	case inspect.KindBool, inspect.KindInt, inspect.KindUint:
		return "INTEGER"
	case inspect.KindFloat:
		return "REAL"
	case inspect.KindBytes:
		return "BLOB"
	default:
		return ""
	}
}

// Row returns the parameters of the record's INSERT statement in column
// order.
//
// Parameters:
//   - mod: Name of the plugin the record comes from
//   - rec: Record to export
//
// Returns:
//   - []any: Values of type string, int64, float64, []byte or nil
//   - error: errs.ErrUnknownRecordTag for a nil or unregistered record
func Row(mod string, rec esp.Record) ([]any, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", errs.ErrUnknownRecordTag)
	}
	e, err := entryOf(rec.Tag())
	if err != nil {
		return nil, err
	}

	row := make([]any, 0, len(e.table.Columns))
	row = append(row, rec.EditorID(), mod, rec.ObjectFlags().String())

	values := make(map[string]any)
	for _, f := range inspect.Fields(rec) {
		values[f.Path] = f.Value()
	}

	for i, c := range e.table.Columns[3:] {
		v := sqlValue(values[c.Path])
		if s, ok := v.(string); ok && s == "" && e.refs[i+3] {
			v = nil
		}
		row = append(row, v)
	}

	return row, nil
}

// sqlValue converts a field value to a driver friendly type.
func sqlValue(v any) any {
	if v == nil {
		return nil
	}
	if b, ok := v.([]byte); ok {
		return b
	}

	rv := reflect.ValueOf(v)
	if s, ok := v.(fmt.Stringer); ok && rv.Kind() != reflect.String {
		if rv.CanInt() || rv.CanUint() {
			return s.String()
		}
	}

	switch {
	case rv.Kind() == reflect.String:
		return rv.String()
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return int64(1)
		}
		return int64(0)
	case rv.CanInt():
		return rv.Int()
	case rv.CanUint():
		return int64(rv.Uint()) //nolint:gosec
	case rv.CanFloat():
		return rv.Float()
	default:
		return fmt.Sprint(v)
	}
}
