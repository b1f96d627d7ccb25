// Package artifacts writes and reloads the pipeline's deliverables: the
// processed entity tables, the model bundle and the engineering maps the
// dashboard needs to reproduce derived columns.
package artifacts

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/trainer"
)

// Artifact file names, fixed so the dashboard can find them by convention.
const (
	PostingsFile    = "vagas_processadas.csv"
	CandidatesFile  = "candidatos_processados.csv"
	ModelFile       = "modelo_recrutamento.json"
	ColumnsFile     = "colunas_modelo.json"
	EngineeringFile = "artefatos_engenharia.json"
	ExamplesFile    = "exemplos_predicao.csv"
	SummaryFile     = "resumo_recrutamento.xlsx"
)

// EngineeringMaps bundles every vocabulary and mapping the feature
// derivation depends on, so downstream consumers never re-derive them from
// code.
type EngineeringMaps struct {
	LanguageLevels      map[string]int      `json:"niveis_idioma"`
	AcademicLevels      map[string][]string `json:"niveis_academicos"`
	ProfessionalLevels  map[string][]string `json:"niveis_profissionais"`
	PostingTechnologies []string            `json:"tecnologias_vaga"`
	CandidateSkills     []string            `json:"skills_candidato"`
}

// Exporter writes all artifacts below one output directory.
type Exporter struct {
	dir    string
	logger *zap.Logger
}

// NewExporter creates the output directory if needed.
func NewExporter(dir string, logger *zap.Logger) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifacts directory: %w", err)
	}
	return &Exporter{dir: dir, logger: logger}, nil
}

// Path returns the absolute location of a named artifact.
func (e *Exporter) Path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *Exporter) writeCSV(name string, header []string, rows [][]string) error {
	file, err := os.Create(e.Path(name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s rows: %w", name, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", name, err)
	}

	e.logger.Info("artifact written", zap.String("file", name), zap.Int("rows", len(rows)))
	return nil
}

func (e *Exporter) writeJSON(name string, payload any) error {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(e.Path(name), encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	e.logger.Info("artifact written", zap.String("file", name))
	return nil
}

var postingsHeader = []string{
	"id_vaga", "titulo_vaga", "cliente", "categoria_vaga", "modalidade_trabalho",
	"vaga_sap", "nivel_ingles", "nivel_espanhol", "area_atuacao", "descricao_unificada",
}

// WritePostings exports the processed postings table. Identifiers stay
// strings end to end; nothing may reinterpret "007" as 7.
func (e *Exporter) WritePostings(postings *dataset.Postings) error {
	rows := make([][]string, 0, postings.Len())
	for _, posting := range postings.Items {
		rows = append(rows, []string{
			posting.ID, posting.Title, posting.Client, posting.Category, posting.Modality,
			strconv.Itoa(posting.SAPFlag), strconv.Itoa(posting.EnglishLevel),
			strconv.Itoa(posting.SpanishLevel), posting.CleanArea, posting.Description,
		})
	}
	return e.writeCSV(PostingsFile, postingsHeader, rows)
}

var candidatesHeader = []string{
	"id_candidato", "nome", "categoria_profissional", "nivel_academico_padronizado",
	"nivel_profissional_padronizado", "nivel_ingles", "nivel_espanhol", "descricao_unificada",
}

// WriteCandidates exports the processed candidates table.
func (e *Exporter) WriteCandidates(candidates *dataset.Candidates) error {
	rows := make([][]string, 0, candidates.Len())
	for _, candidate := range candidates.Items {
		rows = append(rows, []string{
			candidate.ID, candidate.Name, candidate.Category, candidate.AcademicLevelClean,
			candidate.ProfessionalLevelClean, strconv.Itoa(candidate.EnglishLevel),
			strconv.Itoa(candidate.SpanishLevel), candidate.Description,
		})
	}
	return e.writeCSV(CandidatesFile, candidatesHeader, rows)
}

// WriteModel exports the trained model and, separately, its column order.
// The column file exists on its own because the dashboard only needs the
// layout to build scoring vectors.
func (e *Exporter) WriteModel(model *trainer.Model) error {
	if err := e.writeJSON(ModelFile, model); err != nil {
		return err
	}
	return e.writeJSON(ColumnsFile, model.Columns)
}

// WriteEngineering exports the feature-engineering vocabulary bundle.
func (e *Exporter) WriteEngineering(maps EngineeringMaps) error {
	return e.writeJSON(EngineeringFile, maps)
}

// Example is one illustrative prediction for the dashboard: a true positive
// or true negative with the context a reviewer needs to judge it.
type Example struct {
	Kind          string
	PostingTitle  string
	CandidateName string
	Status        string
	Label         int
	Score         float64
}

var examplesHeader = []string{
	"tipo", "titulo_vaga", "candidato_nome", "situacao", "contratado", "probabilidade",
}

// WriteExamples exports the selected illustrative predictions.
func (e *Exporter) WriteExamples(examples []Example) error {
	rows := make([][]string, 0, len(examples))
	for _, example := range examples {
		rows = append(rows, []string{
			example.Kind, example.PostingTitle, example.CandidateName, example.Status,
			strconv.Itoa(example.Label), strconv.FormatFloat(example.Score, 'f', 4, 64),
		})
	}
	return e.writeCSV(ExamplesFile, examplesHeader, rows)
}
