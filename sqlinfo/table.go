package sqlinfo

import (
	"strings"
	"unicode"
)

// Column is one column of a table.
type Column struct {
	// Name is the SQL column name, for example "data_weight".
	Name string
	// Type is the declared SQL type: TEXT, INTEGER, REAL, BLOB, or empty
	// for columns holding values of varying type.
	Type string
	// Path is the inspect path the column is filled from. It is empty for
	// the id, mod and flags columns and for join table columns.
	Path string
}

// ForeignKey links a column to the id column of a record table.
type ForeignKey struct {
	Column string
	Table  string
}

// Table describes a record table or a join table.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
	// PrimaryKey names the key column. Record tables are keyed by "id",
	// join tables have no key.
	PrimaryKey string
}

// CreateSQL renders the CREATE TABLE statement of the table.
func (t Table) CreateSQL() string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE IF NOT EXISTS ")
	sb.WriteString(quote(t.Name))
	sb.WriteString(" (\n")

	for i, c := range t.Columns {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString("\t")
		sb.WriteString(quote(c.Name))
		if c.Type != "" {
			sb.WriteString(" ")
			sb.WriteString(c.Type)
		}
		if c.Name == t.PrimaryKey {
			sb.WriteString(" PRIMARY KEY COLLATE NOCASE")
		}
	}
	for _, fk := range t.ForeignKeys {
		sb.WriteString(",\n\tFOREIGN KEY (")
		sb.WriteString(quote(fk.Column))
		sb.WriteString(") REFERENCES ")
		sb.WriteString(quote(fk.Table))
		sb.WriteString(" (\"id\")")
	}
	sb.WriteString("\n)")

	return sb.String()
}

// InsertSQL renders a parameterized INSERT statement with one placeholder
// per column. Record tables replace an existing row of the same id, so a
// plugin loaded later overrides its masters.
func (t Table) InsertSQL() string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = quote(c.Name)
	}

	verb := "INSERT"
	if t.PrimaryKey != "" {
		verb = "INSERT OR REPLACE"
	}

	return verb + " INTO " + quote(t.Name) +
		" (" + strings.Join(names, ", ") + ")" +
		" VALUES (" + strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ") + ")"
}

// Column returns the column named name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnName converts an inspect path to a column name:
// "data.majorSkills.2" gives "data_major_skills_2".
func columnName(path string) string {
	var sb strings.Builder
	prev := rune(0)
	for _, r := range path {
		switch {
		case r == '.':
			sb.WriteByte('_')
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
		prev = r
	}

	return sb.String()
}
