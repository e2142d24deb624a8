package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
)

type testEnum int32

const (
	testNone  testEnum = -1
	testFirst testEnum = 0
	testLast  testEnum = 2
)

func (e testEnum) Valid() bool {
	return e >= testNone && e <= testLast
}

type testFlags uint32

func TestReader_Primitives(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.U8(0xab)
	w.I8(-2)
	w.U16(0xbeef)
	w.I16(-300)
	w.U32(0xdeadbeef)
	w.I32(-70000)
	w.U64(0x0102030405060708)
	w.F32(2.5)
	w.Bool(true)
	w.Raw([]byte{9, 8, 7})

	data, err := w.Bytes()
	require.NoError(t, err)
	require.Len(t, data, 1+1+2+2+4+4+8+4+1+3)

	r := NewReader(data)
	require.Equal(t, uint8(0xab), r.U8())
	require.Equal(t, int8(-2), r.I8())
	require.Equal(t, uint16(0xbeef), r.U16())
	require.Equal(t, int16(-300), r.I16())
	require.Equal(t, uint32(0xdeadbeef), r.U32())
	require.Equal(t, int32(-70000), r.I32())
	require.Equal(t, uint64(0x0102030405060708), r.U64())
	require.Equal(t, float32(2.5), r.F32())
	require.True(t, r.Bool())
	require.Equal(t, []byte{9, 8, 7}, r.Bytes(3))
	require.True(t, r.Done())
	require.NoError(t, r.Err())
}

func TestReader_UnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	require.Equal(t, uint8(1), r.U8())
	require.Equal(t, uint32(0), r.U32())

	err := r.Err()
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)

	var de *errs.DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, int64(1), de.Offset)

	// sticky: later reads do nothing
	require.Equal(t, uint8(0), r.U8())
	require.Equal(t, 2, r.Len())
}

func TestReader_Tag(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty input is a clean end", nil, io.EOF},
		{"one byte is truncated", []byte{'N'}, errs.ErrUnexpectedEOF},
		{"three bytes are truncated", []byte{'N', 'A', 'M'}, errs.ErrUnexpectedEOF},
		{"full tag", []byte{'N', 'A', 'M', 'E'}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			tag, err := r.Tag()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, format.NewTag("NAME"), tag)
		})
	}
}

func TestReader_PeekAndExpectTag(t *testing.T) {
	r := NewReader([]byte("TES3MISC"))

	tag, ok := r.PeekTag()
	require.True(t, ok)
	require.Equal(t, format.NewTag("TES3"), tag)
	require.Equal(t, 8, r.Len(), "peek must not consume")

	require.NoError(t, r.ExpectTag(format.NewTag("TES3")))

	err := r.ExpectTag(format.NewTag("CELL"))
	require.ErrorIs(t, err, errs.ErrUnrecognizedTag)

	var de *errs.DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, format.NewTag("MISC"), de.Chunk)
	require.Equal(t, int64(4), de.Offset)

	_, ok = NewReader([]byte("AB")).PeekTag()
	require.False(t, ok)
}

func TestReader_ExpectSize(t *testing.T) {
	w := NewWriter()
	w.U32(92)
	data, err := w.Finish()
	require.NoError(t, err)

	r := NewReader(data)
	err = r.ExpectSize(96)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)

	var de *errs.DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, int64(96), de.Expected)
	require.Equal(t, int64(92), de.Actual)
	require.Contains(t, err.Error(), "expected 96, got 92")

	require.NoError(t, NewReader(data).ExpectSize(92))
}

func TestReader_Strings(t *testing.T) {
	t.Run("trailing NULs are stripped", func(t *testing.T) {
		r := NewReader([]byte("gold_001\x00\x00"))
		require.Equal(t, "gold_001", r.String(10))
	})

	t.Run("zero length string", func(t *testing.T) {
		r := NewReader(nil)
		require.Equal(t, "", r.String(0))
		require.NoError(t, r.Err())
	})

	t.Run("Windows-1252 bytes decode to UTF-8", func(t *testing.T) {
		r := NewReader([]byte{'c', 'a', 'f', 0xe9, 0x00})
		require.Equal(t, "café", r.String(5))
	})

	t.Run("fixed string is cut at first NUL", func(t *testing.T) {
		buf := make([]byte, IDLength)
		copy(buf, "Bethesda\x00junk")
		r := NewReader(buf)
		require.Equal(t, "Bethesda", r.FixedString(IDLength))
		require.True(t, r.Done())
	})
}

func TestWriter_Strings(t *testing.T) {
	t.Run("zstring appends terminator", func(t *testing.T) {
		w := NewWriter()
		w.ZString("café")
		data, err := w.Finish()
		require.NoError(t, err)
		require.Equal(t, []byte{'c', 'a', 'f', 0xe9, 0x00}, data)
	})

	t.Run("fixed string pads and truncates", func(t *testing.T) {
		w := NewWriter()
		w.FixedString("abc", 5)
		w.FixedString("abcdefgh", 4)
		data, err := w.Finish()
		require.NoError(t, err)
		require.Equal(t, []byte{'a', 'b', 'c', 0, 0, 'a', 'b', 'c', 'd'}, data)
	})

	t.Run("unencodable rune fails", func(t *testing.T) {
		w := NewWriter()
		defer w.Release()
		w.String("日本")
		require.ErrorIs(t, w.Err(), errs.ErrEncodeFailure)
		_, err := w.Bytes()
		require.ErrorIs(t, err, errs.ErrEncodeFailure)
	})
}

func TestEnum(t *testing.T) {
	w := NewWriter()
	w.I32(-1)
	w.I32(2)
	w.I32(7)
	data, err := w.Finish()
	require.NoError(t, err)

	r := NewReader(data)
	require.Equal(t, testNone, EnumI32[testEnum](r))
	require.Equal(t, testLast, EnumI32[testEnum](r))
	require.NoError(t, r.Err())

	_ = EnumI32[testEnum](r)
	err = r.Err()
	require.ErrorIs(t, err, errs.ErrInvalidDiscriminant)

	var de *errs.DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, int64(7), de.Value)
	require.Equal(t, int64(8), de.Offset)

	r = NewReader([]byte{0})
	require.Equal(t, testFirst, EnumU8[testEnum](r))
}

func TestFlags_RetainUnknownBits(t *testing.T) {
	r := NewReader([]byte{0x21, 0x00, 0x00, 0x80})
	f := FlagsU32[testFlags](r)
	require.NoError(t, r.Err())
	require.Equal(t, testFlags(0x80000021), f)
}

func TestReader_Sub(t *testing.T) {
	r := NewReader([]byte{0, 0, 1, 2, 3, 4, 5})
	r.Skip(2)

	sub := r.Sub(3)
	require.Equal(t, int64(2), sub.Offset())
	require.Equal(t, 3, sub.Len())
	require.Equal(t, 2, r.Len())

	sub.U16()
	sub.U16()
	require.ErrorIs(t, sub.Err(), errs.ErrUnexpectedEOF)
	require.NoError(t, r.Err(), "child failure must not leak into parent")

	var de *errs.DecodeError
	require.True(t, errors.As(sub.Err(), &de))
	require.Equal(t, int64(4), de.Offset)

	short := r.Sub(10)
	require.ErrorIs(t, short.Err(), errs.ErrUnexpectedEOF)
	require.ErrorIs(t, r.Err(), errs.ErrUnexpectedEOF)
}

func TestWriter_Placeholders(t *testing.T) {
	t.Run("chunk length", func(t *testing.T) {
		w := NewWriter()
		p := w.BeginChunk(format.NewTag("NAME"))
		w.ZString("id")
		w.EndChunk(p)

		data, err := w.Finish()
		require.NoError(t, err)
		require.Equal(t, []byte{'N', 'A', 'M', 'E', 3, 0, 0, 0, 'i', 'd', 0}, data)
	})

	t.Run("record length skips header words", func(t *testing.T) {
		w := NewWriter()
		w.Tag(format.NewTag("STAT"))
		p := w.Reserve()
		w.U32(0)
		w.U32(0x400)
		w.Raw([]byte{1, 2, 3, 4, 5})
		require.NoError(t, w.Patch(p, RecordHeaderWidth))

		data, err := w.Finish()
		require.NoError(t, err)
		r := NewReader(data)
		r.Skip(4)
		require.Equal(t, uint32(5), r.U32())
	})

	t.Run("nested placeholders", func(t *testing.T) {
		w := NewWriter()
		outer := w.Reserve()
		inner := w.BeginChunk(format.NewTag("DATA"))
		w.U16(1)
		w.EndChunk(inner)
		require.NoError(t, w.Patch(outer, ChunkHeaderWidth))

		data, err := w.Finish()
		require.NoError(t, err)
		r := NewReader(data)
		require.Equal(t, uint32(10), r.U32())
	})

	t.Run("unresolved placeholder blocks finalization", func(t *testing.T) {
		w := NewWriter()
		defer w.Release()
		w.BeginChunk(format.NewTag("NAME"))
		_, err := w.Bytes()
		require.ErrorIs(t, err, errs.ErrEncodeFailure)
	})

	t.Run("double patch fails", func(t *testing.T) {
		w := NewWriter()
		defer w.Release()
		p := w.BeginChunk(format.NewTag("NAME"))
		w.EndChunk(p)
		require.NoError(t, w.Err())
		w.EndChunk(p)
		require.ErrorIs(t, w.Err(), errs.ErrEncodeFailure)
	})

	t.Run("unknown placeholder fails", func(t *testing.T) {
		w := NewWriter()
		defer w.Release()
		w.U32(0)
		require.ErrorIs(t, w.Patch(Placeholder{offset: 0}, ChunkHeaderWidth), errs.ErrEncodeFailure)
	})
}

func TestWriter_Chunk(t *testing.T) {
	t.Run("exact size", func(t *testing.T) {
		w := NewWriter()
		w.Chunk(format.NewTag("MCDT"), 12, func(w *Writer) {
			w.F32(2.5)
			w.U32(10)
			w.U32(0)
		})
		data, err := w.Finish()
		require.NoError(t, err)
		require.Len(t, data, 20)
		require.Equal(t, []byte{12, 0, 0, 0}, data[4:8])
	})

	t.Run("short write fails", func(t *testing.T) {
		w := NewWriter()
		defer w.Release()
		w.Chunk(format.NewTag("MCDT"), 12, func(w *Writer) {
			w.F32(2.5)
		})
		require.ErrorIs(t, w.Err(), errs.ErrEncodeFailure)
	})
}

func BenchmarkReader_Primitives(b *testing.B) {
	data := make([]byte, 4096)
	for b.Loop() {
		r := NewReader(data)
		for !r.Done() {
			r.U32()
		}
	}
}
