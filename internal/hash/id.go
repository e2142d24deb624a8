package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// EditorID computes the case-insensitive hash of an editor id.
// Ids that differ only by letter case hash to the same value.
func EditorID(id string) uint64 {
	return xxhash.Sum64String(strings.ToLower(id))
}

// Sum computes the xxHash64 of a byte slice.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
