package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/collision"
	"github.com/arloliu/tes3/internal/hash"
)

// Duplicate reports an editor id used by two records of the same kind.
// First and Second are positions in the indexed record slice.
type Duplicate struct {
	Tag    format.Tag
	ID     string
	First  int
	Second int
}

// Index looks up records by editor id. Ids are scoped per record kind, so a
// cell and its path grid can share a name, and compare case-insensitively.
//
// Records without an editor id, such as the header, are not indexed. When an
// id repeats, the first record keeps it and the repeat is reported by
// Duplicates.
type Index struct {
	records  []Record
	trackers map[format.Tag]*collision.Tracker
}

// NewIndex builds an Index over records. The slice is not copied.
func NewIndex(records []Record) *Index {
	idx := &Index{trackers: make(map[format.Tag]*collision.Tracker)}
	idx.Rebuild(records)

	return idx
}

// Rebuild replaces the indexed records, reusing the per-kind trackers.
func (idx *Index) Rebuild(records []Record) {
	for _, t := range idx.trackers {
		t.Reset()
	}
	idx.records = records

	for i, rec := range records {
		id := rec.EditorID()
		if id == "" {
			continue
		}

		t, ok := idx.trackers[rec.Tag()]
		if !ok {
			t = collision.NewTracker()
			idx.trackers[rec.Tag()] = t
		}
		// duplicates are collected by the tracker
		_ = t.Track(id, hash.EditorID(id), i)
	}
}

// Find returns the record of the given kind with the given editor id.
func (idx *Index) Find(tag format.Tag, id string) (Record, bool) {
	t, ok := idx.trackers[tag]
	if !ok {
		return nil, false
	}

	pos, ok := t.Lookup(id, hash.EditorID(id))
	if !ok {
		return nil, false
	}

	return idx.records[pos], true
}

// Len returns the number of distinct indexed ids over all kinds.
func (idx *Index) Len() int {
	n := 0
	for _, t := range idx.trackers {
		n += t.Count()
	}

	return n
}

// Duplicates returns the repeated ids grouped by kind in format order.
func (idx *Index) Duplicates() []Duplicate {
	var dups []Duplicate
	for i := range registry {
		t, ok := idx.trackers[registry[i].tag]
		if !ok {
			continue
		}
		for _, d := range t.Duplicates() {
			dups = append(dups, Duplicate{Tag: registry[i].tag, ID: d.ID, First: d.First, Second: d.Second})
		}
	}

	return dups
}

// HasHashCollision reports whether two different ids of one kind share a
// hash. Lookups stay exact; a collision only costs a string comparison.
func (idx *Index) HasHashCollision() bool {
	for _, t := range idx.trackers {
		if t.HasCollision() {
			return true
		}
	}

	return false
}
