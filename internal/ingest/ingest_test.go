package ingest

import (
	"testing"

	"go.uber.org/zap"
)

func TestDecodeDocumentRejectsNonMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "array top level", data: `[{"titulo": "x"}]`},
		{name: "scalar top level", data: `42`},
		{name: "invalid json", data: `{"unterminated":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			document, ok := decodeDocument([]byte(tt.data), "test.json", zap.NewNop())
			if ok {
				t.Fatalf("expected decode to fail")
			}
			if document != nil {
				t.Fatalf("expected nil document, got %v", document)
			}
		})
	}
}

func TestNormalizePostingsMergesSubGroups(t *testing.T) {
	t.Parallel()

	document := map[string]any{
		"5001": map[string]any{
			"informacoes_basicas": map[string]any{
				"titulo":  "Consultor SAP FI",
				"cliente": "Acme Corp",
			},
			"perfil_vaga": map[string]any{
				"nivel_profissional": "Sênior",
				"ingles":             "Avançado",
				"observacoes":        "Trabalho 100% remoto",
			},
		},
		"5002": map[string]any{
			"informacoes_basicas": map[string]any{
				"titulo": "Desenvolvedor Java",
			},
		},
	}

	postings := NormalizePostings(document)
	if postings.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", postings.Len())
	}

	first := postings.FindByID("5001")
	if first == nil {
		t.Fatalf("expected posting 5001 to exist")
	}
	if first.Title != "Consultor SAP FI" || first.Client != "Acme Corp" {
		t.Fatalf("basic info not merged: %+v", first)
	}
	if first.Level != "Sênior" || first.EnglishRaw != "Avançado" {
		t.Fatalf("profile info not merged: %+v", first)
	}

	second := postings.FindByID("5002")
	if second.Level != "" {
		t.Fatalf("expected absent field to stay empty, got %q", second.Level)
	}
}

func TestNormalizeCandidatesConcatenatesExperiences(t *testing.T) {
	t.Parallel()

	document := map[string]any{
		"c100": map[string]any{
			"infos_basicas": map[string]any{
				"nome":  "Ana Souza",
				"email": "ana@example.com",
			},
			"informacoes_profissionais": map[string]any{
				"titulo_profissional": "Desenvolvedora Python",
			},
			"formacao_e_idiomas": map[string]any{
				"nivel_academico": "Ensino Superior Completo",
				"nivel_ingles":    "Fluente",
			},
			"experiencia_profissional": []any{
				map[string]any{
					"titulo_cargo":         "Dev Backend",
					"descricao_atividades": "APIs em python e aws",
				},
				map[string]any{
					"titulo_cargo":         "Analista",
					"descricao_atividades": "Relatórios em sql",
				},
				"garbage entry",
			},
		},
	}

	candidates := NormalizeCandidates(document)
	if candidates.Len() != 1 {
		t.Fatalf("expected 1 candidate, got %d", candidates.Len())
	}

	candidate := candidates.Items[0]
	if candidate.ExperienceText != "APIs em python e aws Relatórios em sql" {
		t.Fatalf("unexpected experience text: %q", candidate.ExperienceText)
	}
	if candidate.ExperienceTitles != "Dev Backend Analista" {
		t.Fatalf("unexpected experience titles: %q", candidate.ExperienceTitles)
	}
	if candidate.EnglishRaw != "Fluente" {
		t.Fatalf("unexpected english level: %q", candidate.EnglishRaw)
	}
}

func TestNormalizeProspectsFansOutApplications(t *testing.T) {
	t.Parallel()

	document := map[string]any{
		"5001": map[string]any{
			"titulo":     "Consultor SAP FI",
			"modalidade": "Remoto",
			"prospects": []any{
				map[string]any{
					"nome":               "Ana Souza",
					"codigo":             "c100",
					"situacao_candidado": "Contratado pela Decision",
					"data_candidatura":   "10-01-2024",
					"ultima_atualizacao": "20-02-2024",
				},
				map[string]any{
					"nome":               "Bruno Lima",
					"codigo":             "c200",
					"situacao_candidado": "Desistiu",
				},
			},
		},
		"5002": map[string]any{
			"titulo": "Sem prospects",
		},
	}

	prospects := NormalizeProspects(document)
	if prospects.Len() != 2 {
		t.Fatalf("expected 2 prospect events, got %d", prospects.Len())
	}

	first := prospects.Items[0]
	if first.PostingID != "5001" || first.CandidateID != "c100" {
		t.Fatalf("unexpected keys: %+v", first)
	}
	if first.PostingTitle != "Consultor SAP FI" || first.RawModality != "Remoto" {
		t.Fatalf("posting fields not carried onto event: %+v", first)
	}
	if first.Status != "Contratado pela Decision" {
		t.Fatalf("unexpected status: %q", first.Status)
	}
}

func TestLoadPostingsMissingFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	postings := LoadPostings("testdata/does-not-exist.json", zap.NewNop())
	if postings.Len() != 0 {
		t.Fatalf("expected empty postings, got %d", postings.Len())
	}
}
