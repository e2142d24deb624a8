package inspect

import (
	"strings"
	"unicode"
)

// splitWords splits a Go identifier at case changes. A run of capitals is
// kept together as an acronym: "NPCFlags" gives "NPC", "Flags".
func splitWords(name string) []string {
	runes := []rune(name)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
		case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		default:
			continue
		}
		words = append(words, string(runes[start:i]))
		start = i
	}

	return append(words, string(runes[start:]))
}

// displayName turns a field name into a label: "ArmorRating" gives
// "Armor Rating".
func displayName(name string) string {
	return strings.Join(splitWords(name), " ")
}

// pathName turns a field name into a path segment: "ArmorRating" gives
// "armorRating", "ID" gives "id".
func pathName(name string) string {
	words := splitWords(name)
	words[0] = strings.ToLower(words[0])

	return strings.Join(words, "")
}
