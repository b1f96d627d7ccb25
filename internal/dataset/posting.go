package dataset

// Posting is one job opening as published by the staffing operation.
// Raw fields come straight from the normalized JSON record; derived fields
// are filled in by the cleaning and enrichment stages.
type Posting struct {
	ID          string `json:"id_vaga"`
	Title       string `json:"titulo_vaga"`
	Client      string `json:"cliente"`
	Division    string `json:"divisao_empresa"`
	State       string `json:"estado"`
	City        string `json:"municipio"`
	Level       string `json:"nivel_profissional_vaga"`
	Education   string `json:"formacao"`
	EnglishRaw  string `json:"ingles"`
	SpanishRaw  string `json:"espanhol"`
	Area        string `json:"area"`
	Activities  string `json:"atividades"`
	Competences string `json:"competencias"`
	Notes       string `json:"observacoes"`
	SAPRole     string `json:"sap_cargo"`

	// Derived.
	Modality     string         `json:"modalidade_trabalho"`
	SAPFlag      int            `json:"vaga_flag_sap"`
	EnglishLevel int            `json:"nivel_ingles_ordinal"`
	SpanishLevel int            `json:"nivel_espanhol_ordinal"`
	CleanArea    string         `json:"area_limpa"`
	Description  string         `json:"descricao_unificada"`
	Category     string         `json:"categoria_vaga"`
	TechFlags    map[string]int `json:"tecnologias"`
}

type Postings struct {
	Items []*Posting
}

func (p *Postings) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Postings) FindByID(id string) *Posting {
	if p == nil {
		return nil
	}
	for _, posting := range p.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// Index returns a lookup map keyed by posting identifier. Later duplicates
// do not override earlier ones, keeping the first record authoritative.
func (p *Postings) Index() map[string]*Posting {
	index := make(map[string]*Posting, p.Len())
	if p == nil {
		return index
	}
	for _, posting := range p.Items {
		if _, ok := index[posting.ID]; !ok {
			index[posting.ID] = posting
		}
	}
	return index
}
