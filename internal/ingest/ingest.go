// Package ingest turns the raw JSON documents (postings, candidates and
// prospect events) into flat entity records. Each document is a mapping from
// entity identifier to a nested record split into depth-1 sub-groups; the
// normalizers merge the sub-groups into one record per entity. Structural
// problems degrade to empty outputs with a logged warning so one bad source
// never halts the whole batch.
package ingest

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// readDocument loads and decodes one raw JSON document. Any failure is
// reported through the returned ok flag; the caller decides what "empty"
// means for its entity type.
func readDocument(path string, logger *zap.Logger) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("raw document unavailable, continuing with empty input",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}
	return decodeDocument(data, path, logger)
}

func decodeDocument(data []byte, path string, logger *zap.Logger) (map[string]any, bool) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.Warn("raw document is not valid JSON, continuing with empty input",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	record, ok := decoded.(map[string]any)
	if !ok {
		logger.Warn("raw document top level is not a mapping, continuing with empty input",
			zap.String("path", path),
		)
		return nil, false
	}
	return record, true
}

// subGroup returns the named depth-1 sub-group of a record, or an empty map
// when the group is absent or not a mapping.
func subGroup(record map[string]any, name string) map[string]any {
	group, ok := record[name].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return group
}

// stringField reads a string field from a merged record. Absent fields and
// non-string values yield the empty string; the cleaner later folds it into
// the placeholder together with explicitly empty values.
func stringField(record map[string]any, name string) string {
	value, _ := record[name].(string)
	return value
}

func firstString(groups []map[string]any, name string) string {
	for _, group := range groups {
		if value := stringField(group, name); value != "" {
			return value
		}
	}
	return ""
}
