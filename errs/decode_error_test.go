package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tes3/format"
)

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{
			name: "size mismatch",
			err: &DecodeError{
				Err: ErrSizeMismatch, Record: format.NewTag("CREA"), Chunk: format.NewTag("NPDT"),
				Offset: 0x1a4, Expected: 96, Actual: 92,
			},
			want: "record CREA: chunk NPDT at offset 0x1a4: size mismatch (expected 96, got 92)",
		},
		{
			name: "discriminant",
			err:  &DecodeError{Err: ErrInvalidDiscriminant, Record: format.NewTag("BODY"), Chunk: format.NewTag("BYDT"), Offset: 40, Value: 200},
			want: "record BODY: chunk BYDT at offset 0x28: invalid discriminant (value 200)",
		},
		{
			name: "outside any record",
			err:  NewDecodeError(ErrMissingHeader, 0),
			want: "at offset 0x0: missing plugin header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	err := fmt.Errorf("load plugin: %w", NewDecodeError(ErrUnexpectedEOF, 12))
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.NotErrorIs(t, err, ErrSizeMismatch)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, int64(12), de.Offset)
}

func TestWithRecordAndChunk(t *testing.T) {
	err := error(NewDecodeError(ErrOrphanChunk, 64))
	err = WithChunk(err, format.NewTag("INTV"))
	err = WithRecord(err, format.NewTag("LEVI"))

	// the innermost layer wins
	err = WithChunk(err, format.NewTag("NAME"))
	err = WithRecord(err, format.NewTag("LEVC"))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "INTV", de.Chunk.String())
	require.Equal(t, "LEVI", de.Record.String())

	plain := errors.New("io failure")
	require.Same(t, plain, WithRecord(plain, format.NewTag("MISC")))
	require.Nil(t, WithChunk(nil, format.NewTag("MISC")))
}
