package prep

import (
	"regexp"
	"strings"

	"github.com/recrutaml/recruta/internal/dataset"
)

var financialPattern = regexp.MustCompile(`(?i)salário|remuneração|r\$|pretensão`)

// PreparePostings cleans every text field of every posting in place and
// derives its features: work modality, SAP flag, language ordinals, cleaned
// area, unified description, technology flags and title category.
func PreparePostings(postings *dataset.Postings, cleaner *Cleaner, tagger *Tagger) {
	for _, posting := range postings.Items {
		posting.Title = cleaner.Text(posting.Title)
		posting.Client = cleaner.Text(posting.Client)
		posting.Division = cleaner.Text(posting.Division)
		posting.State = cleaner.Text(posting.State)
		posting.City = cleaner.Text(posting.City)
		posting.Level = cleaner.Text(posting.Level)
		posting.Education = cleaner.Text(posting.Education)
		posting.EnglishRaw = cleaner.Text(posting.EnglishRaw)
		posting.SpanishRaw = cleaner.Text(posting.SpanishRaw)
		posting.Area = cleaner.Text(posting.Area)
		posting.Activities = cleaner.Text(posting.Activities)
		posting.Competences = cleaner.Text(posting.Competences)
		posting.Notes = cleaner.Text(posting.Notes)
		posting.SAPRole = cleaner.Text(posting.SAPRole)

		posting.Modality = ClassifyModality(posting.Notes)
		if posting.SAPRole == "sim" {
			posting.SAPFlag = 1
		} else {
			posting.SAPFlag = 0
		}
		posting.EnglishLevel = LanguageLevel(posting.EnglishRaw)
		posting.SpanishLevel = LanguageLevel(posting.SpanishRaw)
		posting.CleanArea = strings.TrimSpace(strings.ReplaceAll(posting.Area, "-", ""))
		posting.Description = UnifiedPostingText(posting.Title, posting.Activities, posting.Competences)
		posting.TechFlags = tagger.Flags(posting.Description)
		posting.Category = PostingCategory(posting.Title)
	}
}

// PrepareCandidates cleans and enriches every candidate in place.
func PrepareCandidates(candidates *dataset.Candidates, cleaner *Cleaner, tagger *Tagger) {
	for _, candidate := range candidates.Items {
		candidate.Name = cleaner.Text(candidate.Name)
		candidate.Email = cleaner.Text(candidate.Email)
		candidate.Location = cleaner.Text(candidate.Location)
		candidate.Title = cleaner.Text(candidate.Title)
		candidate.AcademicLevel = cleaner.Text(candidate.AcademicLevel)
		candidate.ProfessionalLevel = cleaner.Text(candidate.ProfessionalLevel)
		candidate.EnglishRaw = cleaner.Text(candidate.EnglishRaw)
		candidate.SpanishRaw = cleaner.Text(candidate.SpanishRaw)
		candidate.ExperienceText = cleaner.Text(candidate.ExperienceText)
		candidate.ExperienceTitles = cleaner.Text(candidate.ExperienceTitles)

		candidate.Description = UnifiedCandidateText(candidate.ExperienceText, candidate.ExperienceTitles, candidate.Title)
		candidate.Category = CandidateCategory(candidate.Title)
		candidate.AcademicLevelClean = StandardizeAcademicLevel(candidate.AcademicLevel)
		candidate.ProfessionalLevelClean = StandardizeProfessionalLevel(candidate.ProfessionalLevel)
		candidate.EnglishLevel = LanguageLevel(candidate.EnglishRaw)
		candidate.SpanishLevel = LanguageLevel(candidate.SpanishRaw)
		candidate.SkillFlags = tagger.Flags(candidate.Description)
	}
}

// PrepareProspects cleans and enriches every prospect event in place: status
// grouping, modality standardization, date parsing, process duration and the
// financial-reference flag.
func PrepareProspects(prospects *dataset.Prospects, cleaner *Cleaner) {
	for _, prospect := range prospects.Items {
		prospect.PostingTitle = cleaner.Text(prospect.PostingTitle)
		prospect.RawModality = cleaner.Text(prospect.RawModality)
		prospect.CandidateName = cleaner.Text(prospect.CandidateName)
		prospect.Status = cleaner.Text(prospect.Status)
		prospect.Comments = cleaner.Text(prospect.Comments)
		prospect.Recruiter = cleaner.Text(prospect.Recruiter)

		prospect.AppliedAt = ParseDate(prospect.AppliedRaw)
		prospect.UpdatedAt = ParseDate(prospect.UpdatedRaw)
		prospect.DurationDays = processDuration(prospect)
		prospect.Modality = StandardizeModality(prospect.RawModality)
		prospect.StatusGroup = GroupStatus(prospect.Status)
		if prospect.Comments != Placeholder && financialPattern.MatchString(prospect.Comments) {
			prospect.HasFinancialRef = 1
		} else {
			prospect.HasFinancialRef = 0
		}
	}
}

// processDuration computes the process length in days. Missing dates or an
// update before the application yield DurationUndefined, never a negative
// number.
func processDuration(prospect *dataset.Prospect) int {
	if prospect.AppliedAt.IsZero() || prospect.UpdatedAt.IsZero() {
		return dataset.DurationUndefined
	}
	days := int(prospect.UpdatedAt.Sub(prospect.AppliedAt).Hours() / 24)
	if days < 0 {
		return dataset.DurationUndefined
	}
	return days
}

// Summarized status categories for prospect events.
var statusGroups = map[string]string{
	"prospect":   "Em Avaliação",
	"aprovado":   "Finalizado - Contratado",
	"contratado": "Finalizado - Contratado",
	"reprovado":  "Finalizado - Rejeitado",
	"desistiu":   "Desistiu",
	"pausado":    "Standby",
}

const statusGroupFallback = "Outros/Desconhecido"

// GroupStatus folds a raw status onto the summarized category set.
func GroupStatus(status string) string {
	if group, ok := statusGroups[strings.ToLower(strings.TrimSpace(status))]; ok {
		return group
	}
	return statusGroupFallback
}
