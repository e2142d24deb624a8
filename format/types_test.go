package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"record tag", "MISC", "MISC"},
		{"chunk tag with underscore", "AI_T", "AI_T"},
		{"short tag is padded", "NP", "NP??"},
		{"long tag is truncated", "NAMEX", "NAME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewTag(tt.in).String())
		})
	}

	require.True(t, Tag{}.IsZero())
	require.False(t, NewTag("NAME").IsZero())
	require.Equal(t, NewTag("NPC_"), Tag{'N', 'P', 'C', '_'})
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
