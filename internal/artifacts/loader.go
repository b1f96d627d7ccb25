package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/recrutaml/recruta/internal/trainer"
)

// LoadBundle reloads a previously exported model bundle and verifies its
// internal consistency. Weights and columns drifting out of sync is a
// boundary failure worth stopping on, not something to score around.
func LoadBundle(dir string) (*trainer.Model, error) {
	encoded, err := os.ReadFile(filepath.Join(dir, ModelFile))
	if err != nil {
		return nil, fmt.Errorf("reading model bundle: %w", err)
	}

	model := &trainer.Model{}
	if err := json.Unmarshal(encoded, model); err != nil {
		return nil, fmt.Errorf("decoding model bundle: %w", err)
	}
	if len(model.Columns) == 0 {
		return nil, fmt.Errorf("model bundle declares no feature columns")
	}
	if len(model.Columns) != len(model.Weights) {
		return nil, fmt.Errorf("model bundle is inconsistent: %d columns but %d weights",
			len(model.Columns), len(model.Weights))
	}

	columns, err := loadColumns(dir)
	if err != nil {
		return nil, err
	}
	if len(columns) != len(model.Columns) {
		return nil, fmt.Errorf("column file lists %d columns but the model holds %d",
			len(columns), len(model.Columns))
	}
	for i, column := range columns {
		if column != model.Columns[i] {
			return nil, fmt.Errorf("column order mismatch at %d: %q vs %q", i, column, model.Columns[i])
		}
	}

	return model, nil
}

func loadColumns(dir string) ([]string, error) {
	encoded, err := os.ReadFile(filepath.Join(dir, ColumnsFile))
	if err != nil {
		return nil, fmt.Errorf("reading column file: %w", err)
	}
	var columns []string
	if err := json.Unmarshal(encoded, &columns); err != nil {
		return nil, fmt.Errorf("decoding column file: %w", err)
	}
	return columns, nil
}

// requiredArtifacts are the files a complete export always contains.
var requiredArtifacts = []string{
	PostingsFile, CandidatesFile, ModelFile, ColumnsFile, EngineeringFile,
}

// Check verifies that a directory holds a complete, consistent artifact set.
// It returns the list of verified files for reporting.
func Check(dir string) ([]string, error) {
	for _, name := range requiredArtifacts {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", name, err)
		}
		if info.Size() == 0 {
			return nil, fmt.Errorf("artifact %s is empty", name)
		}
	}
	if _, err := LoadBundle(dir); err != nil {
		return nil, err
	}
	return append([]string(nil), requiredArtifacts...), nil
}
