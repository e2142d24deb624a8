package esp

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
)

func samplePlugin() *Plugin {
	records := sampleRecords()

	return &Plugin{Header: records[0].(*Header), Records: records[1:]}
}

func TestRegistry(t *testing.T) {
	tags := Tags()
	require.Len(t, tags, 43)
	require.Equal(t, TagTES3, tags[0])
	require.Equal(t, TagINFO, tags[len(tags)-1])

	seen := make(map[format.Tag]bool)
	for _, tag := range tags {
		require.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true

		rec, ok := NewRecord(tag)
		require.True(t, ok)
		require.Equal(t, tag, rec.Tag())
		require.Equal(t, tag, TagOf(rec))
		require.Equal(t, rec.TypeName(), DisplayName(tag))
	}

	rec, ok := NewRecord(format.NewTag("ZZZZ"))
	require.False(t, ok)
	require.Nil(t, rec)
	require.Equal(t, "ZZZZ", DisplayName(format.NewTag("ZZZZ")))
}

func TestRegistry_SamplesCoverEveryKind(t *testing.T) {
	samples := sampleRecords()
	require.Len(t, samples, len(Tags()))
	for i, tag := range Tags() {
		require.Equal(t, tag, samples[i].Tag())
	}
}

func TestPlugin_RoundTrip(t *testing.T) {
	p := samplePlugin()

	data, err := p.Encode()
	require.NoError(t, err)

	got, err := DecodePlugin(data)
	require.NoError(t, err)
	require.Equal(t, p.Header, got.Header)
	require.Equal(t, p.Records, got.Records)

	again, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestPlugin_MissingHeader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("TES")},
		{"other record first", rawRecord("MISC", 0, rawChunk("NAME", zstr("a")), rawChunk("MCDT", make([]byte, 12)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePlugin(tt.data)
			require.ErrorIs(t, err, errs.ErrMissingHeader)
		})
	}

	_, err := (&Plugin{}).Encode()
	require.ErrorIs(t, err, errs.ErrMissingHeader)
	require.ErrorIs(t, err, errs.ErrEncodeFailure)
}

func TestPlugin_UnrecognizedRecord(t *testing.T) {
	header, err := EncodeRecords([]Record{&Header{Version: 1.3}})
	require.NoError(t, err)

	misc := rawRecord("MISC", 0, rawChunk("NAME", zstr("a")), rawChunk("MCDT", make([]byte, 12)))
	unknown := rawRecord("ZZZZ", 0, rawChunk("NAME", zstr("x")))
	data := concat(header, unknown, misc)

	t.Run("strict", func(t *testing.T) {
		_, err := DecodePlugin(data)
		de := requireDecodeError(t, err, errs.ErrUnrecognizedTag, "ZZZZ", "")
		require.Equal(t, int64(len(header)), de.Offset)
	})

	t.Run("lenient", func(t *testing.T) {
		var logs bytes.Buffer
		p, err := DecodePlugin(data, WithLenient(), WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
		require.NoError(t, err)
		require.Len(t, p.Records, 1)
		require.Equal(t, "a", p.Records[0].EditorID())
		require.Contains(t, logs.String(), "skipping unrecognized record")
	})
}

func TestPlugin_UnrecognizedChunkAbortsPlugin(t *testing.T) {
	header, err := EncodeRecords([]Record{&Header{}})
	require.NoError(t, err)

	bad := rawRecord("STAT", 0, rawChunk("NAME", zstr("rock")), rawChunk("QQQQ", nil))
	_, err = DecodePlugin(concat(header, bad))
	requireDecodeError(t, err, errs.ErrUnrecognizedTag, "STAT", "QQQQ")
}

func TestPlugin_RecountObjects(t *testing.T) {
	p := samplePlugin()
	stored := p.Header.NumObjects

	data, err := p.Encode()
	require.NoError(t, err)
	got, err := DecodePlugin(data)
	require.NoError(t, err)
	require.Equal(t, stored, got.Header.NumObjects)

	data, err = p.Encode(WithRecountObjects())
	require.NoError(t, err)
	got, err = DecodePlugin(data)
	require.NoError(t, err)
	require.Equal(t, uint32(len(p.Records)), got.Header.NumObjects)
	require.Equal(t, stored, p.Header.NumObjects)
}

func TestDecodeRecords(t *testing.T) {
	records := sampleRecords()[10:20]

	data, err := EncodeRecords(records)
	require.NoError(t, err)

	got, err := DecodeRecords(data)
	require.NoError(t, err)
	require.Equal(t, records, got)

	got, err = DecodeRecords(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPlugin_LoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.esp")
	p := samplePlugin()
	require.NoError(t, p.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, p.Records, got.Records)

	_, err = Load(filepath.Join(t.TempDir(), "missing.esp"))
	require.Error(t, err)
}

func TestIndex(t *testing.T) {
	records := []Record{
		&MiscItem{ID: "Gold_001"},
		&MiscItem{ID: "gold_005"},
		&Cell{Name: "Seyda Neen", Data: CellData{Flags: CellInterior}},
		&PathGrid{Cell: "Seyda Neen"},
		&MiscItem{ID: "GOLD_001"},
		&Header{},
	}

	idx := NewIndex(records)
	require.Equal(t, 4, idx.Len())

	rec, ok := idx.Find(TagMISC, "gold_001")
	require.True(t, ok)
	require.Same(t, records[0], rec)

	rec, ok = idx.Find(TagPGRD, "SEYDA NEEN")
	require.True(t, ok)
	require.Same(t, records[3], rec)

	_, ok = idx.Find(TagMISC, "gold_100")
	require.False(t, ok)
	_, ok = idx.Find(TagWEAP, "gold_001")
	require.False(t, ok)

	require.Equal(t, []Duplicate{{Tag: TagMISC, ID: "GOLD_001", First: 0, Second: 4}}, idx.Duplicates())
	require.False(t, idx.HasHashCollision())
}

func TestIndex_Rebuild(t *testing.T) {
	idx := NewIndex([]Record{&MiscItem{ID: "gold_001"}, &MiscItem{ID: "Gold_001"}})
	require.Len(t, idx.Duplicates(), 1)

	next := []Record{&Static{ID: "ex_rock_01"}, &MiscItem{ID: "gold_005"}}
	idx.Rebuild(next)
	require.Equal(t, 2, idx.Len())
	require.Empty(t, idx.Duplicates())

	_, ok := idx.Find(TagMISC, "gold_001")
	require.False(t, ok)
	rec, ok := idx.Find(TagMISC, "GOLD_005")
	require.True(t, ok)
	require.Same(t, next[1], rec)
	require.False(t, idx.HasHashCollision())
}

func TestPlugin_Index(t *testing.T) {
	p := samplePlugin()
	idx := p.Index()

	rec, ok := idx.Find(TagNPC_, "Fargoth")
	require.True(t, ok)
	require.Equal(t, "Fargoth", rec.(*Npc).Name)
	require.Empty(t, idx.Duplicates())
}

func BenchmarkDecodePlugin(b *testing.B) {
	data, err := samplePlugin().Encode()
	require.NoError(b, err)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := DecodePlugin(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodePlugin(b *testing.B) {
	p := samplePlugin()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := p.Encode(); err != nil {
			b.Fatal(err)
		}
	}
}
