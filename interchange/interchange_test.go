package interchange

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/hash"
)

func sampleRecords() []esp.Record {
	return []esp.Record{
		&esp.GlobalVariable{ID: "ChargenState", Type: esp.GlobalShort, Value: 10},
		&esp.MiscItem{
			Base:   esp.Base{Flags: esp.ObjectPersistent},
			ID:     "misc_dwrv_coin00",
			Name:   "Dwemer Coin",
			Mesh:   "m\\misc_dwrv_coin00.nif",
			Icon:   "m\\misc_dwrv_coin00.tga",
			Script: "",
			Data:   esp.MiscItemData{Weight: 0.1, Value: 10},
		},
		&esp.Weapon{
			ID:   "iron dagger",
			Name: "Iron Dagger",
			Mesh: "w\\w_dagger_iron.nif",
			Data: esp.WeaponData{Weight: 3, Value: 10, Health: 450, Speed: 2.5, Reach: 1, ChopMin: 3, ChopMax: 10},
		},
	}
}

// envelopeText builds interchange text around an arbitrary envelope.
func envelopeText(t *testing.T, env envelope) string {
	t.Helper()
	data, err := encMode.Marshal(&env)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func TestMarshal_RoundTrip(t *testing.T) {
	records := sampleRecords()
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			text, err := Marshal(records, WithCompression(ct))
			require.NoError(t, err)
			require.NotEmpty(t, text)

			out, err := Unmarshal(text)
			require.NoError(t, err)
			require.Equal(t, records, out)
		})
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(sampleRecords())
	require.NoError(t, err)
	b, err := Marshal(sampleRecords())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMarshal_DefaultsToZstd(t *testing.T) {
	text, err := Marshal(sampleRecords())
	require.NoError(t, err)

	data, err := base64.StdEncoding.DecodeString(text)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, decMode.Unmarshal(data, &env))
	require.Equal(t, uint8(EnvelopeVersion), env.Version)
	require.Equal(t, format.CompressionZstd, env.Compression)
	require.Equal(t, uint32(3), env.Count)
}

func TestMarshal_Empty(t *testing.T) {
	text, err := Marshal(nil, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	out, err := Unmarshal(text)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestMarshal_InvalidCompression(t *testing.T) {
	_, err := Marshal(sampleRecords(), WithCompression(0x20))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestMarshal_EncodeFailure(t *testing.T) {
	_, err := Marshal([]esp.Record{nil})
	require.ErrorIs(t, err, errs.ErrEncodeFailure)
}

func TestMarshalRecord(t *testing.T) {
	rec := sampleRecords()[1]

	text, err := MarshalRecord(rec)
	require.NoError(t, err)

	out, err := UnmarshalRecord(text)
	require.NoError(t, err)
	require.Equal(t, rec, out)

	many, err := Marshal(sampleRecords())
	require.NoError(t, err)
	_, err = UnmarshalRecord(many)
	require.ErrorIs(t, err, errs.ErrUnsupportedEnvelope)
}

func TestUnmarshal_Errors(t *testing.T) {
	raw, err := esp.EncodeRecords(sampleRecords())
	require.NoError(t, err)

	valid := envelope{
		Version:     EnvelopeVersion,
		Compression: format.CompressionNone,
		Count:       3,
		Hash:        hash.Sum(raw),
		Payload:     raw,
	}

	tests := []struct {
		name   string
		text   func() string
		target error
	}{
		{
			name:   "not base64",
			text:   func() string { return "!!not base64!!" },
			target: errs.ErrUnsupportedEnvelope,
		},
		{
			name:   "not cbor",
			text:   func() string { return base64.StdEncoding.EncodeToString([]byte{0xff, 0x00}) },
			target: errs.ErrUnsupportedEnvelope,
		},
		{
			name: "future version",
			text: func() string {
				env := valid
				env.Version = 2
				return envelopeText(t, env)
			},
			target: errs.ErrUnsupportedEnvelope,
		},
		{
			name: "unknown compression",
			text: func() string {
				env := valid
				env.Compression = 0x09
				return envelopeText(t, env)
			},
			target: errs.ErrInvalidCompression,
		},
		{
			name: "hash mismatch",
			text: func() string {
				env := valid
				env.Hash++
				return envelopeText(t, env)
			},
			target: errs.ErrChecksumMismatch,
		},
		{
			name: "count mismatch",
			text: func() string {
				env := valid
				env.Count = 4
				return envelopeText(t, env)
			},
			target: errs.ErrChecksumMismatch,
		},
		{
			name: "corrupt compressed payload",
			text: func() string {
				env := valid
				env.Compression = format.CompressionZstd
				return envelopeText(t, env)
			},
			target: errs.ErrChecksumMismatch,
		},
		{
			name: "truncated records",
			text: func() string {
				env := valid
				env.Payload = raw[:len(raw)-3]
				env.Hash = hash.Sum(env.Payload)
				return envelopeText(t, env)
			},
			target: errs.ErrUnexpectedEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.text())
			require.ErrorIs(t, err, tt.target)
		})
	}

	out, err := Unmarshal(envelopeText(t, valid))
	require.NoError(t, err)
	require.Len(t, out, 3)
}

func TestUnmarshal_DecodeOptions(t *testing.T) {
	raw, err := esp.EncodeRecords(sampleRecords()[:1])
	require.NoError(t, err)

	// Append an unknown chunk to the GLOB record and patch its size.
	raw = append(raw, 'Z', 'Z', 'Z', 'Z', 1, 0, 0, 0, 7)
	raw[4] += 9

	text := envelopeText(t, envelope{
		Version:     EnvelopeVersion,
		Compression: format.CompressionNone,
		Count:       1,
		Hash:        hash.Sum(raw),
		Payload:     raw,
	})

	_, err = Unmarshal(text)
	require.ErrorIs(t, err, errs.ErrUnrecognizedTag)

	out, err := Unmarshal(text, WithDecodeOptions(esp.WithLenient()))
	require.NoError(t, err)
	require.Equal(t, sampleRecords()[:1], out)
}

func TestMarshal_TextIsCompact(t *testing.T) {
	records := make([]esp.Record, 0, 200)
	for range 200 {
		records = append(records, sampleRecords()[1])
	}

	plain, err := Marshal(records, WithCompression(format.CompressionNone))
	require.NoError(t, err)
	packed, err := Marshal(records)
	require.NoError(t, err)
	require.Less(t, len(packed)*4, len(plain))
	require.False(t, strings.ContainsAny(packed, " \n"))
}

func BenchmarkMarshal(b *testing.B) {
	records := sampleRecords()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Marshal(records)
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	text, _ := Marshal(sampleRecords())
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Unmarshal(text)
	}
}
