package tes3

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
)

func testPlugin() *esp.Plugin {
	return &esp.Plugin{
		Header: &esp.Header{Version: 1.3, Author: "tester", Masters: []esp.Master{{Name: "Morrowind.esm", Size: 79837557}}},
		Records: []esp.Record{
			&esp.MiscItem{ID: "misc_key_01", Name: "Key", Data: esp.MiscItemData{Weight: 2.5, Value: 10}},
			&esp.Static{ID: "ex_rock_01", Mesh: "x\\ex_rock_01.nif"},
			&esp.GlobalVariable{ID: "DaysPassed", Type: esp.GlobalShort, Value: 3},
		},
	}
}

// TestEncodeDecode verifies a plugin survives an encode/decode cycle
func TestEncodeDecode(t *testing.T) {
	p := testPlugin()

	data, err := Encode(p)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

// TestDecode_Errors verifies decode failures are reported with their cause
func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, errs.ErrMissingHeader)

	data, err := Encode(testPlugin())
	require.NoError(t, err)

	_, err = Decode(data[:len(data)-3])
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

// TestRecordGraph verifies headerless record sequences round trip
func TestRecordGraph(t *testing.T) {
	records := testPlugin().Records

	data, err := EncodeRecordGraph(records)
	require.NoError(t, err)

	got, err := DecodeRecordGraph(data)
	require.NoError(t, err)
	require.Equal(t, records, got)

	// a graph has no header, so it is not a plugin
	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrMissingHeader)
}

// TestLoadSave verifies plugins are written to and read from disk
func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.esp")
	p := testPlugin()

	require.NoError(t, Save(path, p, esp.WithRecountObjects()))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, p.Records, got.Records)
	require.Equal(t, uint32(3), got.Header.NumObjects)
	require.Equal(t, uint32(0), p.Header.NumObjects)
}

// TestRecordID verifies editor ids hash case-insensitively
func TestRecordID(t *testing.T) {
	require.Equal(t, RecordID("Gold_001"), RecordID("gold_001"))
	require.NotEqual(t, RecordID("gold_001"), RecordID("gold_005"))
}

// TestSummarize verifies record frames are counted without decoding
func TestSummarize(t *testing.T) {
	p := testPlugin()
	p.Records = append(p.Records, &esp.MiscItem{Base: esp.Base{Flags: esp.ObjectDeleted}, ID: "misc_old"})

	data, err := Encode(p)
	require.NoError(t, err)

	s, err := Summarize(data)
	require.NoError(t, err)
	require.Equal(t, 5, s.Records)
	require.Equal(t, 1, s.Deleted)
	require.Equal(t, 2, s.ByTag[esp.TagMISC])
	require.Equal(t, 1, s.ByTag[esp.TagTES3])

	_, err = Summarize(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)

	empty, err := Summarize(nil)
	require.NoError(t, err)
	require.Zero(t, empty.Records)
}
