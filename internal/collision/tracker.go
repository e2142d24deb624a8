package collision

import (
	"strings"

	"github.com/arloliu/tes3/errs"
)

// Duplicate describes an editor id that appears more than once.
// First and Second are the positions passed to Track.
type Duplicate struct {
	ID     string
	First  int
	Second int
}

type entry struct {
	id       string
	position int
}

// Tracker tracks editor ids by hash and detects duplicates and hash collisions.
// Ids compare case-insensitively, so "Gold_001" and "gold_001" are duplicates.
type Tracker struct {
	ids          map[uint64][]entry // Hash → ids seen with that hash
	duplicates   []Duplicate        // Duplicates in detection order
	hasCollision bool               // Whether two different ids share a hash
	count        int
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids:        make(map[uint64][]entry),
		duplicates: make([]Duplicate, 0),
	}
}

// Track records an editor id with its hash and position.
//
// Returns error if:
// - The id is empty (ErrInvalidEditorID)
// - The same id (ignoring case) was tracked before (ErrDuplicateEditorID)
//
// Note: Hash collisions (different ids, same hash) are NOT errors here.
// The collision flag is set and both ids stay tracked.
func (t *Tracker) Track(id string, hash uint64, position int) error {
	if id == "" {
		return errs.ErrInvalidEditorID
	}

	for _, e := range t.ids[hash] {
		if strings.EqualFold(e.id, id) {
			t.duplicates = append(t.duplicates, Duplicate{ID: id, First: e.position, Second: position})
			return errs.ErrDuplicateEditorID
		}
		t.hasCollision = true
	}

	t.ids[hash] = append(t.ids[hash], entry{id: id, position: position})
	t.count++

	return nil
}

// Lookup returns the position of the first tracked id equal to id ignoring case.
func (t *Tracker) Lookup(id string, hash uint64) (int, bool) {
	for _, e := range t.ids[hash] {
		if strings.EqualFold(e.id, id) {
			return e.position, true
		}
	}

	return 0, false
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns the duplicate ids in the order they were detected.
func (t *Tracker) Duplicates() []Duplicate {
	return t.duplicates
}

// Count returns the number of distinct tracked ids.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked ids and collision state.
func (t *Tracker) Reset() {
	for k := range t.ids {
		delete(t.ids, k)
	}
	t.duplicates = t.duplicates[:0]
	t.hasCollision = false
	t.count = 0
}
