package esp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlags_String(t *testing.T) {
	tests := []struct {
		name  string
		flags interface{ String() string }
		want  string
	}{
		{"none", ObjectFlags(0), "NONE"},
		{"named bits", ObjectDeleted | ObjectPersistent, "DELETED | PERSISTENT"},
		{"unknown bits kept", ObjectDeleted | ObjectFlags(0x40000), "DELETED | 0x40000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.flags.String())
		})
	}
}

func TestObjectFlags_Has(t *testing.T) {
	f := ObjectDeleted | ObjectBlocked
	require.True(t, f.Has(ObjectDeleted))
	require.True(t, f.Has(ObjectDeleted|ObjectBlocked))
	require.False(t, f.Has(ObjectDeleted|ObjectPersistent))
}

func TestEnums_Valid(t *testing.T) {
	require.True(t, SkillNone.Valid())
	require.True(t, SkillAlchemy.Valid())
	require.False(t, SkillID(27).Valid())
	require.False(t, SkillID(-2).Valid())

	require.True(t, EffectNone.Valid())
	require.True(t, EffectFireDamage.Valid())
	require.False(t, EffectID(143).Valid())

	require.True(t, FileTypeEss.Valid())
	require.False(t, FileType(2).Valid())

	require.True(t, GlobalFloat.Valid())
	require.False(t, GlobalType(0).Valid())

	require.True(t, SexAny.Valid())
	require.False(t, Sex(2).Valid())
}

func TestEnums_String(t *testing.T) {
	require.Equal(t, "None", SkillNone.String())
	require.Equal(t, "Alchemy", SkillAlchemy.String())
	require.Equal(t, "FireDamage", EffectFireDamage.String())
	require.Equal(t, "Any", SexAny.String())
	require.Equal(t, "Journal", DialogueJournal.String())
	require.Equal(t, "Unknown(99)", DialogueType(99).String())
}

func TestActorFlags_Packing(t *testing.T) {
	raw := packActorFlags(uint32(NpcRespawn|NpcAutoCalc), 2)
	flags, blood := unpackActorFlags(raw)
	require.Equal(t, uint32(NpcRespawn|NpcAutoCalc), flags)
	require.Equal(t, uint8(2), blood)
}
