package dataset

import "time"

// DurationUndefined marks a process duration that could not be computed,
// either because a date is missing or because the update precedes the
// application. It is never exported as a negative day count.
const DurationUndefined = -1

// Prospect is one candidate's application to one posting. PostingID and
// CandidateID reference Posting and Candidate records but the raw sources do
// not guarantee referential integrity, so either side may be dangling.
type Prospect struct {
	PostingID     string `json:"id_vaga_origem"`
	PostingTitle  string `json:"titulo_vaga_prospec"`
	RawModality   string `json:"modalidade_prospec"`
	CandidateID   string `json:"id_candidato_origem"`
	CandidateName string `json:"candidato_nome"`
	Status        string `json:"situacao_candidato"`
	AppliedRaw    string `json:"data_candidatura"`
	UpdatedRaw    string `json:"ultima_atualizacao"`
	Comments      string `json:"comentarios"`
	Recruiter     string `json:"recrutador"`

	// Derived. The zero time marks a date that failed to parse.
	AppliedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	DurationDays    int       `json:"duracao_processo_dias"`
	Modality        string    `json:"modalidade_padronizada"`
	StatusGroup     string    `json:"situacao_resumida"`
	HasFinancialRef int       `json:"tem_referencia_financeira"`
}

type Prospects struct {
	Items []*Prospect
}

func (p *Prospects) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}
