package ingest

import (
	"sort"

	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/dataset"
)

// LoadPostings reads the raw postings document and normalizes it. A missing
// or malformed document yields an empty collection.
func LoadPostings(path string, logger *zap.Logger) *dataset.Postings {
	document, ok := readDocument(path, logger)
	if !ok {
		return &dataset.Postings{}
	}
	return NormalizePostings(document)
}

// NormalizePostings flattens the id -> record mapping into one Posting per
// top-level key. Each record carries two sub-groups ("informacoes_basicas"
// and "perfil_vaga") whose fields are merged; fields absent from both simply
// stay empty.
func NormalizePostings(document map[string]any) *dataset.Postings {
	postings := &dataset.Postings{Items: make([]*dataset.Posting, 0, len(document))}

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
			subGroup(record, "informacoes_basicas"),
			subGroup(record, "perfil_vaga"),
		}

		postings.Items = append(postings.Items, &dataset.Posting{
			ID:          id,
			Title:       firstString(groups, "titulo"),
			Client:      firstString(groups, "cliente"),
			Division:    firstString(groups, "divisao_empresa"),
			State:       firstString(groups, "estado"),
			City:        firstString(groups, "municipio"),
			Level:       firstString(groups, "nivel_profissional"),
			Education:   firstString(groups, "formacao"),
			EnglishRaw:  firstString(groups, "ingles"),
			SpanishRaw:  firstString(groups, "espanhol"),
			Area:        firstString(groups, "area"),
			Activities:  firstString(groups, "atividades"),
			Competences: firstString(groups, "competencias"),
			Notes:       firstString(groups, "observacoes"),
			SAPRole:     firstString(groups, "sap_cargo"),
		})
	}
	return postings
}
