package stream

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/tes3/errs"
)

// Capacities of the two fixed-size string layouts used by the format.
const (
	IDLength   = 32  // short identifier buffers (author, rank names, script ids)
	TextLength = 256 // long free-text buffers (plugin description)
)

// decodeText converts Windows-1252 bytes to a UTF-8 string.
func decodeText(data []byte) string {
	// Fast path: ASCII is identical in Windows-1252 and UTF-8
	if isASCII(data) {
		return string(data)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		// unreachable for single-byte charmaps
		return string(data)
	}

	return string(decoded)
}

// encodeText converts a UTF-8 string to Windows-1252 bytes.
func encodeText(s string) ([]byte, error) {
	if isASCIIString(s) {
		return []byte(s), nil
	}

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode %q as Windows-1252: %v", errs.ErrEncodeFailure, s, err)
	}

	return encoded, nil
}

// trimNulls strips trailing NUL bytes.
func trimNulls(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// cutNull returns data up to the first NUL byte.
func cutNull(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}

	return data
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}

	return true
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}
