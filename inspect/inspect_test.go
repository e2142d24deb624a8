package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
)

func TestFields_MiscItem(t *testing.T) {
	rec := &esp.MiscItem{
		Base: esp.Base{Flags: esp.ObjectPersistent},
		ID:   "misc_skooma_vial",
		Name: "Skooma Vial",
		Data: esp.MiscItemData{Weight: 0.5, Value: 3, Flags: esp.MiscItemKey},
	}

	fields := Fields(rec)
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, f.Path)
	}
	require.Equal(t, []string{
		"flags", "id", "name", "mesh", "script", "icon",
		"data.weight", "data.value", "data.flags",
	}, paths)

	require.Equal(t, "ID", fields[1].Name)
	require.Equal(t, KindString, fields[1].Kind)
	require.Equal(t, "misc_skooma_vial", fields[1].Value())

	require.Equal(t, KindFlags, fields[0].Kind)
	require.Equal(t, esp.ObjectPersistent, fields[0].Value())

	require.Equal(t, KindFloat, fields[6].Kind)
	require.Equal(t, float32(0.5), fields[6].Value())
	require.Equal(t, KindUint, fields[7].Kind)
	require.Equal(t, esp.MiscItemKey, fields[8].Value())
}

func TestFields_EveryKind(t *testing.T) {
	for _, tag := range esp.Tags() {
		rec, ok := esp.NewRecord(tag)
		require.True(t, ok)

		fields := Fields(rec)
		require.NotEmpty(t, fields, tag.String())

		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			require.False(t, seen[f.Path], "%s: duplicate path %s", tag, f.Path)
			seen[f.Path] = true
			require.NotEmpty(t, f.Name)
			require.NotPanics(t, func() { f.Value() }, "%s.%s", tag, f.Path)
		}
		require.True(t, seen["flags"], tag.String())
	}
}

func TestFields_Nil(t *testing.T) {
	require.Nil(t, Fields(nil))

	_, err := Get(nil, "id")
	require.ErrorIs(t, err, errs.ErrInvalidFieldPath)
}

func TestFields_Arrays(t *testing.T) {
	rec := &esp.Class{
		ID: "Crusader",
		Data: esp.ClassData{
			Attributes:  [2]esp.AttributeID{esp.AttributeNone, esp.AttributeNone},
			MajorSkills: [5]esp.SkillID{esp.SkillBlock, esp.SkillAxe, esp.SkillSpear, esp.SkillAlchemy, esp.SkillSneak},
		},
	}

	v, err := Get(rec, "data.majorSkills.2")
	require.NoError(t, err)
	require.Equal(t, esp.SkillSpear, v)

	f, err := Lookup(rec, "data.majorSkills.2")
	require.NoError(t, err)
	require.Equal(t, "Major Skills 2", f.Name)
	require.Equal(t, KindEnum, f.Kind)

	_, err = Get(rec, "data.majorSkills.5")
	require.ErrorIs(t, err, errs.ErrInvalidFieldPath)
}

func TestFields_LargeArraysHidden(t *testing.T) {
	for _, f := range Fields(&esp.Landscape{}) {
		require.NotContains(t, f.Path, "vertexNormals")
		require.NotContains(t, f.Path, "textureIndices")
		require.NotContains(t, f.Path, "deltas")
	}

	_, err := Get(&esp.Landscape{}, "vertexHeights.offset")
	require.NoError(t, err)
}

func TestFields_ArrayOfStructs(t *testing.T) {
	rec := &esp.Faction{}
	f, err := Lookup(rec, "data.requirements.3.reputation")
	require.NoError(t, err)
	require.Equal(t, "Requirements 3 Reputation", f.Name)
}

func TestOptional(t *testing.T) {
	cell := &esp.Cell{Name: "Balmora, Guild of Mages"}

	v, err := Get(cell, "waterHeight")
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = Get(cell, "atmosphere.fogDensity")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, Set(cell, "atmosphere.fogDensity", 0.75))
	require.NotNil(t, cell.Atmosphere)
	require.InDelta(t, 0.75, cell.Atmosphere.FogDensity, 1e-6)

	require.NoError(t, Set(cell, "waterHeight", -128))
	require.NotNil(t, cell.WaterHeight)
	require.Equal(t, float32(-128), *cell.WaterHeight)

	v, err = Get(cell, "waterHeight")
	require.NoError(t, err)
	require.Equal(t, float32(-128), v)

	require.NoError(t, Set(cell, "waterHeight", nil))
	require.Nil(t, cell.WaterHeight)

	require.NoError(t, Set(cell, "mapColor.2", 200))
	require.Equal(t, &[4]uint8{0, 0, 200, 0}, cell.MapColor)

	err = Set(cell, "name", nil)
	require.ErrorIs(t, err, errs.ErrFieldTypeMismatch)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
		check func(t *testing.T, w *esp.Weapon)
	}{
		{
			name:  "string",
			path:  "name",
			value: "Daedric Dagger",
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, "Daedric Dagger", w.Name) },
		},
		{
			name:  "int to uint16",
			path:  "data.health",
			value: 1200,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, uint16(1200), w.Data.Health) },
		},
		{
			name:  "integral float to uint8",
			path:  "data.chopMax",
			value: 12.0,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, uint8(12), w.Data.ChopMax) },
		},
		{
			name:  "int to float32",
			path:  "data.speed",
			value: 2,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, float32(2), w.Data.Speed) },
		},
		{
			name:  "enum by type",
			path:  "data.type",
			value: esp.WeaponMarksmanBow,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, esp.WeaponMarksmanBow, w.Data.Type) },
		},
		{
			name:  "enum by number",
			path:  "data.type",
			value: 12,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, esp.WeaponArrow, w.Data.Type) },
		},
		{
			name:  "header flags",
			path:  "flags",
			value: esp.ObjectBlocked,
			check: func(t *testing.T, w *esp.Weapon) { require.Equal(t, esp.ObjectBlocked, w.Flags) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &esp.Weapon{ID: "dagger"}
			require.NoError(t, Set(w, tt.path, tt.value))
			tt.check(t, w)

			got, err := Get(w, tt.path)
			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestSet_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value any
	}{
		{"string into number", "data.value", "ten"},
		{"number into string", "name", 10},
		{"negative into uint", "data.value", -1},
		{"overflow uint8", "data.chopMin", 256},
		{"fraction into int", "data.health", 1.5},
		{"invalid enum", "data.type", 99},
		{"bool into float", "data.weight", true},
		{"overflow float32", "data.reach", 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &esp.Weapon{ID: "dagger", Name: "Dagger"}
			before := *w

			err := Set(w, tt.path, tt.value)
			require.ErrorIs(t, err, errs.ErrFieldTypeMismatch)
			require.Equal(t, before, *w)
		})
	}

	err := Set(&esp.Weapon{}, "data.nope", 1)
	require.ErrorIs(t, err, errs.ErrInvalidFieldPath)
}

func TestSet_Interface(t *testing.T) {
	gmst := &esp.GameSetting{ID: "fJumpAcroMultiplier"}

	v, err := Get(gmst, "value")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, Set(gmst, "value", esp.GameSettingFloat(4)))
	require.Equal(t, esp.GameSettingFloat(4), gmst.Value)

	f, err := Lookup(gmst, "value")
	require.NoError(t, err)
	require.Equal(t, KindAny, f.Kind)
	require.Equal(t, esp.GameSettingFloat(4), f.Value())

	err = Set(gmst, "value", 4.0)
	require.ErrorIs(t, err, errs.ErrFieldTypeMismatch)

	require.NoError(t, Set(gmst, "value", nil))
	require.Nil(t, gmst.Value)
}

func TestSet_Bytes(t *testing.T) {
	script := &esp.Script{}
	code := []byte{0x01, 0x02}

	require.NoError(t, Set(script, "bytecode", code))
	code[0] = 0xff
	require.Equal(t, []byte{0x01, 0x02}, script.Bytecode)

	v, err := Get(script, "bytecode")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestNames(t *testing.T) {
	tests := []struct {
		field, display, path string
	}{
		{"ArmorRating", "Armor Rating", "armorRating"},
		{"ID", "ID", "id"},
		{"NPCFlags", "NPC Flags", "npcFlags"},
		{"AiData", "Ai Data", "aiData"},
		{"Skill2Level", "Skill 2 Level", "skill2Level"},
		{"Weight", "Weight", "weight"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.display, displayName(tt.field))
		require.Equal(t, tt.path, pathName(tt.field))
	}
}

func BenchmarkFields(b *testing.B) {
	rec := &esp.Npc{}
	b.ReportAllocs()
	for b.Loop() {
		for _, f := range Fields(rec) {
			_ = f.Value()
		}
	}
}
