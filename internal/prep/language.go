package prep

import "strings"

// defaultLanguageLevels encodes language proficiency on a 0-5 ordinal scale.
// Unrecognized text maps to 0: absence of a stated proficiency is treated as
// no proficiency, not as an error.
var defaultLanguageLevels = map[string]int{
	"não informado": 0,
	"nenhum":        0,
	"básico":        1,
	"intermediário": 2,
	"avançado":      3,
	"fluente":       4,
	"nativo":        5,
}

// LanguageLevels returns a copy of the ordinal proficiency map, for export
// into the engineering-artifacts bundle.
func LanguageLevels() map[string]int {
	levels := make(map[string]int, len(defaultLanguageLevels))
	for name, level := range defaultLanguageLevels {
		levels[name] = level
	}
	return levels
}

// LanguageLevel maps raw proficiency text to its ordinal level.
func LanguageLevel(s string) int {
	return defaultLanguageLevels[strings.ToLower(strings.TrimSpace(s))]
}
