package collision

import (
	"testing"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Duplicates())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("gold_001", hash.EditorID("gold_001"), 0))
	require.NoError(t, tracker.Track("gold_005", hash.EditorID("gold_005"), 1))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())

	pos, ok := tracker.Lookup("GOLD_005", hash.EditorID("GOLD_005"))
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = tracker.Lookup("gold_100", hash.EditorID("gold_100"))
	require.False(t, ok)
}

func TestTracker_Track_EmptyID(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef, 0)

	require.ErrorIs(t, err, errs.ErrInvalidEditorID)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("Fargoth", hash.EditorID("Fargoth"), 3))
	err := tracker.Track("fargoth", hash.EditorID("fargoth"), 9)

	require.ErrorIs(t, err, errs.ErrDuplicateEditorID)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []Duplicate{{ID: "fargoth", First: 3, Second: 9}}, tracker.Duplicates())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("first", 0x1234567890abcdef, 0))
	require.False(t, tracker.HasCollision())

	// Same hash, different id: both kept, flag set
	require.NoError(t, tracker.Track("second", 0x1234567890abcdef, 1))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	pos, ok := tracker.Lookup("second", 0x1234567890abcdef)
	require.True(t, ok)
	require.Equal(t, 1, pos)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1, 0))
	require.NoError(t, tracker.Track("b", 1, 1))
	require.Error(t, tracker.Track("A", 1, 2))

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Duplicates())
	require.NoError(t, tracker.Track("a", 1, 0))
}
