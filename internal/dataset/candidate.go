package dataset

// Candidate is one applicant profile.
type Candidate struct {
	ID                string `json:"id_candidato"`
	Name              string `json:"nome"`
	Email             string `json:"email"`
	Location          string `json:"local"`
	Title             string `json:"titulo_profissional"`
	AcademicLevel     string `json:"nivel_academico"`
	ProfessionalLevel string `json:"nivel_profissional"`
	ExperienceText    string `json:"experiencias_descricao"`
	ExperienceTitles  string `json:"experiencias_titulos"`

	// Derived.
	Description            string         `json:"descricao_completa"`
	Category               string         `json:"categoria_profissional"`
	AcademicLevelClean     string         `json:"nivel_academico_padronizado"`
	ProfessionalLevelClean string         `json:"nivel_profissional_padronizado"`
	EnglishLevel           int            `json:"nivel_ingles_ordinal"`
	SpanishLevel           int            `json:"nivel_espanhol_ordinal"`
	EnglishRaw             string         `json:"nivel_ingles"`
	SpanishRaw             string         `json:"nivel_espanhol"`
	SkillFlags             map[string]int `json:"habilidades"`
}

type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	if c == nil {
		return nil
	}
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

func (c *Candidates) Index() map[string]*Candidate {
	index := make(map[string]*Candidate, c.Len())
	if c == nil {
		return index
	}
	for _, candidate := range c.Items {
		if _, ok := index[candidate.ID]; !ok {
			index[candidate.ID] = candidate
		}
	}
	return index
}
