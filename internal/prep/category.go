package prep

import "strings"

// CategoryRule maps one title category to the keywords that select it.
type CategoryRule struct {
	Category string
	Keywords []string
}

// Posting title categories, ordered by specificity: the SAP-specific rules
// must run before the generic development rule or every "consultor sap abap"
// posting lands in "Desenvolvimento".
var postingCategoryRules = []CategoryRule{
	{Category: "Consultoria SAP", Keywords: []string{"consultor sap", "consultora sap", "especialista sap"}},
	{Category: "Arquitetura SAP", Keywords: []string{"arquitetura sap", "architect sap"}},
	{Category: "Desenvolvimento", Keywords: []string{"developer", "desenvolvedor", "programador", "abap", "frontend", "backend", "fullstack"}},
	{Category: "Dados e BI", Keywords: []string{"dados", "bi", "cientista de dados", "engenheiro de dados"}},
	{Category: "Infraestrutura e Cloud", Keywords: []string{"infraestrutura", "devops", "cloud", "aws", "azure", "google cloud"}},
	{Category: "Gestão de Projetos", Keywords: []string{"gerente de projetos", "scrum master", "agile coach"}},
	{Category: "QA e Testes", Keywords: []string{"qa", "testes", "quality assurance"}},
	{Category: "Design e UX", Keywords: []string{"design", "ux", "ui", "product designer"}},
	{Category: "Analistas", Keywords: []string{"analista", "analyst", "especialista"}},
	{Category: "Liderança Técnica", Keywords: []string{"arquiteto de sistemas", "líder técnico", "tech lead"}},
}

// Candidate professional-title categories, a coarser set than the posting one.
var candidateCategoryRules = []CategoryRule{
	{Category: "Consultoria SAP", Keywords: []string{"consultor sap", "especialista sap"}},
	{Category: "Desenvolvimento", Keywords: []string{"developer", "engenheiro", "programador", "dev"}},
	{Category: "Dados e BI", Keywords: []string{"cientista de dados", "bi", "engenheiro de dados"}},
	{Category: "Infraestrutura", Keywords: []string{"infraestrutura", "devops", "cloud"}},
	{Category: "Outros", Keywords: []string{"gerente", "supervisor", "gestor"}},
}

const (
	postingCategoryFallback   = "Outros/Não especificado"
	candidateCategoryFallback = "Não especificado"
)

func categorize(title string, rules []CategoryRule, fallback string) string {
	folded := strings.ToLower(title)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(folded, keyword) {
				return rule.Category
			}
		}
	}
	return fallback
}

// PostingCategory maps a posting title onto the closed category set.
func PostingCategory(title string) string {
	return categorize(title, postingCategoryRules, postingCategoryFallback)
}

// CandidateCategory maps a candidate's professional title onto the closed
// category set.
func CandidateCategory(title string) string {
	return categorize(title, candidateCategoryRules, candidateCategoryFallback)
}

// Academic and professional level standardization. Keyword order matters:
// "pós-graduação" contains "graduação", "doutorado" must win over "mestrado"
// in combined strings, so the most specific keyword is checked first.
var academicLevelRules = []CategoryRule{
	{Category: "Doutorado", Keywords: []string{"doutorado", "phd"}},
	{Category: "Mestrado", Keywords: []string{"mestrado"}},
	{Category: "Pós-graduação", Keywords: []string{"pós graduação", "pós-graduação", "mba", "especialização"}},
	{Category: "Superior", Keywords: []string{"superior", "graduação", "bacharelado"}},
	{Category: "Técnico", Keywords: []string{"técnico"}},
	{Category: "Ensino Médio", Keywords: []string{"médio"}},
}

var professionalLevelRules = []CategoryRule{
	{Category: "Especialista", Keywords: []string{"especialista"}},
	{Category: "Sênior", Keywords: []string{"sênior", "senior"}},
	{Category: "Pleno", Keywords: []string{"pleno"}},
	{Category: "Júnior", Keywords: []string{"júnior", "junior"}},
	{Category: "Liderança", Keywords: []string{"líder", "gerente", "gestor", "coordenador"}},
	{Category: "Aprendiz", Keywords: []string{"estagiário", "trainee", "aprendiz"}},
}

// StandardizeAcademicLevel folds free-text academic levels onto a closed set.
func StandardizeAcademicLevel(level string) string {
	return categorize(level, academicLevelRules, candidateCategoryFallback)
}

// StandardizeProfessionalLevel folds free-text seniority levels onto a
// closed set.
func StandardizeProfessionalLevel(level string) string {
	return categorize(level, professionalLevelRules, candidateCategoryFallback)
}

// LevelMaps exports the standardization rules as plain maps (standard value
// -> keywords) for the engineering-artifacts bundle, so the dashboard can
// reproduce the derivation without this package.
func LevelMaps() (academic, professional map[string][]string) {
	academic = make(map[string][]string, len(academicLevelRules))
	for _, rule := range academicLevelRules {
		academic[rule.Category] = append([]string(nil), rule.Keywords...)
	}
	professional = make(map[string][]string, len(professionalLevelRules))
	for _, rule := range professionalLevelRules {
		professional[rule.Category] = append([]string(nil), rule.Keywords...)
	}
	return academic, professional
}
