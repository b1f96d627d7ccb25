package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/modeling"
)

const rawPostings = `{
	"5001": {
		"informacoes_basicas": {"titulo": "Consultor SAP FI", "cliente": "Banco Alfa"},
		"perfil_vaga": {
			"ingles": "Avançado", "espanhol": "Nenhum", "sap_cargo": "Sim",
			"atividades": "implantação sap fi", "competencias": "sap abap",
			"observacoes": "modelo híbrido, remoto parcial"
		}
	},
	"5002": {
		"informacoes_basicas": {"titulo": "Desenvolvedor Python", "cliente": "Loja Beta"},
		"perfil_vaga": {
			"ingles": "Básico", "espanhol": "Nenhum", "sap_cargo": "Não",
			"atividades": "apis em python na aws", "competencias": "python aws",
			"observacoes": "trabalho 100% remoto"
		}
	},
	"5003": {
		"informacoes_basicas": {"titulo": "Analista de Dados"},
		"perfil_vaga": {"atividades": "dashboards", "observacoes": "vaga presencial no escritório"}
	}
}`

const rawCandidates = `{
	"31001": {
		"infos_basicas": {"nome": "Ana Lima"},
		"informacoes_profissionais": {"titulo_profissional": "Consultora SAP"},
		"formacao_e_idiomas": {"nivel_academico": "Pós-graduação", "nivel_ingles": "Fluente", "nivel_espanhol": "Básico"},
		"experiencia_profissional": [{"descricao_atividades": "projetos sap abap", "titulo_cargo": "consultora sap"}]
	},
	"31002": {
		"infos_basicas": {"nome": "Bruno Souza"},
		"informacoes_profissionais": {"titulo_profissional": "Desenvolvedor Python"},
		"formacao_e_idiomas": {"nivel_academico": "Superior", "nivel_ingles": "Intermediário"},
		"experiencia_profissional": [{"descricao_atividades": "apis python na aws", "titulo_cargo": "dev backend"}]
	},
	"31003": {
		"infos_basicas": {"nome": "Carla Dias"},
		"informacoes_profissionais": {"titulo_profissional": "Analista de Dados"},
		"formacao_e_idiomas": {"nivel_academico": "Superior", "nivel_ingles": "Básico"}
	},
	"31004": {
		"infos_basicas": {"nome": "Davi Rocha"},
		"informacoes_profissionais": {"titulo_profissional": "Desenvolvedor Java"}
	},
	"31005": {
		"infos_basicas": {"nome": "Eva Prado"}
	}
}`

const rawProspects = `{
	"5001": {
		"titulo": "Consultor SAP FI", "modalidade": "híbrido",
		"prospects": [
			{"nome": "Ana Lima", "codigo": "31001", "situacao_candidado": "Aprovado",
			 "data_candidatura": "01-02-2024", "ultima_atualizacao": "20-02-2024",
			 "comentario": "pretensão salarial alinhada", "recrutador": "paula"},
			{"nome": "Davi Rocha", "codigo": "31004", "situacao_candidado": "Encaminhado ao requisitante",
			 "data_candidatura": "03-02-2024", "ultima_atualizacao": "10-02-2024"}
		]
	},
	"5002": {
		"titulo": "Desenvolvedor Python", "modalidade": "remoto",
		"prospects": [
			{"nome": "Bruno Souza", "codigo": "31002", "situacao_candidado": "Aprovado",
			 "data_candidatura": "05-02-2024", "ultima_atualizacao": "25-02-2024"}
		]
	},
	"5003": {
		"titulo": "Analista de Dados", "modalidade": "presencial",
		"prospects": [
			{"nome": "Carla Dias", "codigo": "31003", "situacao_candidado": "Desistiu",
			 "data_candidatura": "07-02-2024", "ultima_atualizacao": "09-02-2024"}
		]
	}
}`

func writeRawFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		PostingsPath:   writeRawFile(t, dir, "vagas.json", rawPostings),
		CandidatesPath: writeRawFile(t, dir, "candidatos.json", rawCandidates),
		ProspectsPath:  writeRawFile(t, dir, "prospects.json", rawProspects),
		Technologies:   []string{"sap", "abap", "python", "aws"},
		Skills:         []string{"sap", "abap", "python", "aws"},
		Vocabulary: modeling.Vocabulary{
			Success: []string{"aprovado", "contratado pela decision"},
			Failure: []string{"desistiu", "reprovado"},
		},
	}
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	state, err := New(testConfig(t), zap.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Postings.Len() != 3 || state.Candidates.Len() != 5 || state.Prospects.Len() != 4 {
		t.Fatalf("unexpected entity counts: %d/%d/%d",
			state.Postings.Len(), state.Candidates.Len(), state.Prospects.Len())
	}

	// Four prospect events, one with a status outside both vocabularies.
	if state.Rows.Len() != 3 {
		t.Fatalf("expected 3 labeled rows, got %d", state.Rows.Len())
	}
	if state.LabelStats.Positive != 2 || state.LabelStats.Negative != 1 {
		t.Fatalf("unexpected class balance: %+v", state.LabelStats)
	}
	if len(state.Unlabeled) != 1 || state.Unlabeled[0] != "encaminhado ao requisitante" {
		t.Fatalf("unexpected unlabeled statuses: %v", state.Unlabeled)
	}

	if state.Features.Rows() != 3 {
		t.Fatalf("expected 3 feature rows, got %d", state.Features.Rows())
	}
	for i, vector := range state.Features.X {
		if len(vector) != len(state.Features.Columns) {
			t.Fatalf("row %d width mismatch", i)
		}
	}
	positives := 0.0
	for _, label := range state.Features.Y {
		positives += label
	}
	if positives != 2 {
		t.Fatalf("expected 2 positive labels, got %g", positives)
	}
}

func TestPipelineDerivesMatchFeatures(t *testing.T) {
	t.Parallel()

	state, err := New(testConfig(t), zap.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, row := range state.Rows.Items {
		if row.Prospect.CandidateName != "ana lima" {
			continue
		}
		if row.Posting == nil || row.Candidate == nil {
			t.Fatalf("expected both join sides for ana lima")
		}
		if row.EnglishOK != 1 {
			t.Fatalf("fluente must satisfy avançado")
		}
		if row.TotalTechs != 2 || row.SkillsMatched != 2 || row.SkillsMissing != 0 {
			t.Fatalf("unexpected skill features: %+v", row)
		}
		if row.Posting.Modality != "Híbrido" {
			t.Fatalf("hybrid must override remote, got %q", row.Posting.Modality)
		}
		if row.Prospect.DurationDays != 19 {
			t.Fatalf("unexpected process duration: %d", row.Prospect.DurationDays)
		}
		if row.Prospect.HasFinancialRef != 1 {
			t.Fatalf("expected financial reference flag on ana lima's comment")
		}
		return
	}
	t.Fatalf("row for ana lima not found")
}

func TestPipelineDegradesOnMissingSources(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.PostingsPath = filepath.Join(t.TempDir(), "missing.json")
	cfg.CandidatesPath = filepath.Join(t.TempDir(), "missing.json")

	state, err := New(cfg, zap.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Labeling still works from the prospect-side fields alone.
	if state.Rows.Len() != 3 {
		t.Fatalf("expected 3 labeled rows, got %d", state.Rows.Len())
	}
	for _, row := range state.Rows.Items {
		if row.Posting != nil || row.Candidate != nil {
			t.Fatalf("expected dangling join sides")
		}
		if row.SkillsMatched != 0 || row.SkillsMissing != 0 || row.TotalTechs != 0 {
			t.Fatalf("missing sides must yield zero skill features: %+v", row)
		}
		// Both ordinals fold to 0, and 0 >= 0 counts as compatible.
		if row.EnglishOK != 1 || row.SpanishOK != 1 {
			t.Fatalf("missing sides must compare as level 0: %+v", row)
		}
	}
}

func TestPipelineRejectsEmptyVocabulary(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Vocabulary.Success = nil

	if _, err := New(cfg, zap.NewNop()).Run(context.Background()); err == nil {
		t.Fatal("expected error for empty success vocabulary")
	}
}
