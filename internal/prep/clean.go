// Package prep implements the per-entity text cleaning and derived-feature
// enrichment that runs between normalization and the join. All operations are
// pure functions of their input record: running them twice is a no-op.
package prep

import (
	"strings"
	"time"
)

// Placeholder marks a value that is missing or carried only syntactic noise.
// The cleaner case-folds every text field, so the stored form is lowercase.
const Placeholder = "indefinido"

// DateLayout is the day-month-year format used by the raw prospect events.
const DateLayout = "02-01-2006"

var defaultGarbageValues = []string{
	"", "na", "nulo", "null", "nan", "<na>", "não informado", "não disponível", "undefined", "[]", "{}",
}

// Cleaner folds empty and garbage text values into the placeholder and
// normalizes the rest to trimmed lowercase.
type Cleaner struct {
	garbage map[string]struct{}
}

// NewCleaner builds a cleaner from the configured garbage values. An empty
// list selects the default set.
func NewCleaner(garbage []string) *Cleaner {
	if len(garbage) == 0 {
		garbage = defaultGarbageValues
	}
	set := make(map[string]struct{}, len(garbage))
	for _, value := range garbage {
		set[strings.ToLower(strings.TrimSpace(value))] = struct{}{}
	}
	return &Cleaner{garbage: set}
}

// Text returns the cleaned form of a raw text value. The operation is a
// fixed point: Text(Text(s)) == Text(s).
func (c *Cleaner) Text(s string) string {
	folded := strings.ToLower(strings.TrimSpace(s))
	if _, ok := c.garbage[folded]; ok {
		return Placeholder
	}
	return folded
}

// ParseDate parses a day-month-year date. Values that fail to parse yield
// the zero time, the explicit missing-date marker, never an error.
func ParseDate(s string) time.Time {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return parsed
}
