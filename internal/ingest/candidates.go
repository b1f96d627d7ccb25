package ingest

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/dataset"
)

// LoadCandidates reads the raw candidates document and normalizes it.
func LoadCandidates(path string, logger *zap.Logger) *dataset.Candidates {
	document, ok := readDocument(path, logger)
	if !ok {
		return &dataset.Candidates{}
	}
	return NormalizeCandidates(document)
}

// NormalizeCandidates flattens the id -> record mapping into one Candidate
// per top-level key, merging the four profile sub-groups and concatenating
// the work-experience entries into two text blobs (activity descriptions and
// held titles).
func NormalizeCandidates(document map[string]any) *dataset.Candidates {
	candidates := &dataset.Candidates{Items: make([]*dataset.Candidate, 0, len(document))}

	ids := make([]string, 0, len(document))
	for id := range document {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		record, ok := document[id].(map[string]any)
		if !ok {
			record = map[string]any{}
		}
		groups := []map[string]any{
			subGroup(record, "infos_basicas"),
			subGroup(record, "informacoes_pessoais"),
			subGroup(record, "informacoes_profissionais"),
			subGroup(record, "formacao_e_idiomas"),
		}

		descriptions, titles := concatExperiences(record["experiencia_profissional"])

		candidates.Items = append(candidates.Items, &dataset.Candidate{
			ID:                id,
			Name:              firstString(groups, "nome"),
			Email:             firstString(groups, "email"),
			Location:          firstString(groups, "local"),
			Title:             firstString(groups, "titulo_profissional"),
			AcademicLevel:     firstString(groups, "nivel_academico"),
			ProfessionalLevel: firstString(groups, "nivel_profissional"),
			EnglishRaw:        firstString(groups, "nivel_ingles"),
			SpanishRaw:        firstString(groups, "nivel_espanhol"),
			ExperienceText:    descriptions,
			ExperienceTitles:  titles,
		})
	}
	return candidates
}

// concatExperiences joins the free-text fields of the work-experience list.
// Entries that are not mappings are skipped.
func concatExperiences(raw any) (descriptions, titles string) {
	entries, ok := raw.([]any)
	if !ok {
		return "", ""
	}

	var descParts, titleParts []string
	for _, entry := range entries {
		experience, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if text := stringField(experience, "descricao_atividades"); text != "" {
			descParts = append(descParts, text)
		}
		if title := stringField(experience, "titulo_cargo"); title != "" {
			titleParts = append(titleParts, title)
		}
	}
	return strings.TrimSpace(strings.Join(descParts, " ")), strings.TrimSpace(strings.Join(titleParts, " "))
}
