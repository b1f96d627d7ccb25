package modeling

import (
	"sort"

	"github.com/recrutaml/recruta/internal/dataset"
)

// FeatureSchema declares the columns of the feature table up front: the
// sanitized technology and skill flag keys plus the categorical fields that
// get one-hot encoded. Nothing about the column set is inferred from the
// data except the distinct values of the categorical fields.
type FeatureSchema struct {
	Technologies []string
	Skills       []string
}

// FeatureTable is the numeric training matrix. Columns names X's columns in
// order; Y holds the label and is never part of X.
type FeatureTable struct {
	Columns []string
	X       [][]float64
	Y       []float64
}

// Rows returns the number of observations.
func (t *FeatureTable) Rows() int {
	return len(t.X)
}

type categoricalField struct {
	prefix string
	value  func(*dataset.TrainingRow) string
}

var categoricalFields = []categoricalField{
	{prefix: "modalidade_trabalho", value: func(r *dataset.TrainingRow) string {
		return r.Prospect.Modality
	}},
	{prefix: "categoria_vaga", value: func(r *dataset.TrainingRow) string {
		if r.Posting == nil {
			return ""
		}
		return r.Posting.Category
	}},
	{prefix: "categoria_profissional", value: func(r *dataset.TrainingRow) string {
		if r.Candidate == nil {
			return ""
		}
		return r.Candidate.Category
	}},
	{prefix: "nivel_academico", value: func(r *dataset.TrainingRow) string {
		if r.Candidate == nil {
			return ""
		}
		return r.Candidate.AcademicLevelClean
	}},
}

// BuildFeatureTable encodes the labeled rows into the numeric matrix the
// trainer consumes. Categorical fields are one-hot encoded over their sorted
// distinct values with the first level dropped as the reference. An empty
// input yields an empty table, not an error.
func BuildFeatureTable(rows *dataset.TrainingRows, schema FeatureSchema) *FeatureTable {
	table := &FeatureTable{}
	if rows.Len() == 0 {
		return table
	}

	numeric := numericColumns(schema)
	for _, column := range numeric {
		table.Columns = append(table.Columns, column.name)
	}

	// One-hot levels per categorical field, first level dropped.
	levels := make([][]string, len(categoricalFields))
	for i, field := range categoricalFields {
		distinct := make(map[string]struct{})
		for _, row := range rows.Items {
			distinct[field.value(row)] = struct{}{}
		}
		sorted := make([]string, 0, len(distinct))
		for value := range distinct {
			sorted = append(sorted, value)
		}
		sort.Strings(sorted)
		if len(sorted) > 0 {
			sorted = sorted[1:]
		}
		levels[i] = sorted
		for _, value := range sorted {
			table.Columns = append(table.Columns, field.prefix+"_"+value)
		}
	}

	for _, row := range rows.Items {
		vector := make([]float64, 0, len(table.Columns))
		for _, column := range numeric {
			vector = append(vector, column.value(row))
		}
		for i, field := range categoricalFields {
			actual := field.value(row)
			for _, value := range levels[i] {
				if actual == value {
					vector = append(vector, 1)
				} else {
					vector = append(vector, 0)
				}
			}
		}
		table.X = append(table.X, vector)
		table.Y = append(table.Y, float64(row.Label))
	}

	return table
}

type numericColumn struct {
	name  string
	value func(*dataset.TrainingRow) float64
}

func numericColumns(schema FeatureSchema) []numericColumn {
	columns := []numericColumn{
		{name: "vaga_sap", value: func(r *dataset.TrainingRow) float64 {
			if r.Posting == nil {
				return 0
			}
			return float64(r.Posting.SAPFlag)
		}},
		{name: "nivel_ingles_vaga", value: func(r *dataset.TrainingRow) float64 {
			if r.Posting == nil {
				return 0
			}
			return float64(r.Posting.EnglishLevel)
		}},
		{name: "nivel_espanhol_vaga", value: func(r *dataset.TrainingRow) float64 {
			if r.Posting == nil {
				return 0
			}
			return float64(r.Posting.SpanishLevel)
		}},
		{name: "nivel_ingles_candidato", value: func(r *dataset.TrainingRow) float64 {
			if r.Candidate == nil {
				return 0
			}
			return float64(r.Candidate.EnglishLevel)
		}},
		{name: "nivel_espanhol_candidato", value: func(r *dataset.TrainingRow) float64 {
			if r.Candidate == nil {
				return 0
			}
			return float64(r.Candidate.SpanishLevel)
		}},
		{name: "ingles_compativel", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.EnglishOK)
		}},
		{name: "espanhol_compativel", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.SpanishOK)
		}},
		{name: "total_techs_vaga", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.TotalTechs)
		}},
		{name: "techs_compativeis", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.SkillsMatched)
		}},
		{name: "techs_faltantes", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.SkillsMissing)
		}},
		{name: "duracao_processo_dias", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.Prospect.DurationDays)
		}},
		{name: "comentario_referencia_financeira", value: func(r *dataset.TrainingRow) float64 {
			return float64(r.Prospect.HasFinancialRef)
		}},
	}

	for _, tech := range schema.Technologies {
		key := tech
		columns = append(columns, numericColumn{
			name: "vaga_tech_" + key,
			value: func(r *dataset.TrainingRow) float64 {
				if r.Posting == nil {
					return 0
				}
				return float64(r.Posting.TechFlags[key])
			},
		})
	}
	for _, skill := range schema.Skills {
		key := skill
		columns = append(columns, numericColumn{
			name: "candidato_skill_" + key,
			value: func(r *dataset.TrainingRow) float64 {
				if r.Candidate == nil {
					return 0
				}
				return float64(r.Candidate.SkillFlags[key])
			},
		})
	}

	return columns
}
