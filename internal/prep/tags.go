package prep

import (
	"regexp"
	"strings"
)

// SanitizeTagName turns a technology or skill name into an identifier-safe
// flag key: spaces become underscores, dots are removed and "+" becomes
// "plus" so "C++" and "c" never collide.
func SanitizeTagName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, ".", "")
	name = strings.ReplaceAll(name, "+", "plus")
	return strings.ToLower(name)
}

// Tagger flags the presence of configured technology or skill names in a
// unified description text using whole-word, case-insensitive matching.
type Tagger struct {
	names    []string
	patterns map[string]*regexp.Regexp
}

// NewTagger compiles one pattern per configured name. The flag key space is
// the sanitized name, shared between posting technologies and candidate
// skills so overlap features can match them directly.
func NewTagger(names []string) *Tagger {
	tagger := &Tagger{patterns: make(map[string]*regexp.Regexp, len(names))}
	for _, name := range names {
		key := SanitizeTagName(name)
		if key == "" {
			continue
		}
		if _, ok := tagger.patterns[key]; ok {
			continue
		}
		tagger.names = append(tagger.names, key)
		tagger.patterns[key] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return tagger
}

// Names returns the sanitized flag keys in configuration order.
func (t *Tagger) Names() []string {
	return append([]string(nil), t.names...)
}

// Flags returns one 0/1 entry per configured name, keyed by sanitized name.
func (t *Tagger) Flags(text string) map[string]int {
	flags := make(map[string]int, len(t.names))
	for _, key := range t.names {
		if t.patterns[key].MatchString(text) {
			flags[key] = 1
		} else {
			flags[key] = 0
		}
	}
	return flags
}
