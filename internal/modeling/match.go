package modeling

import "github.com/recrutaml/recruta/internal/dataset"

// ComputeMatchFeatures derives the posting/candidate compatibility features
// for every row in place. A missing join side contributes ordinal level 0 and
// no flags, so a posting that requires nothing is still satisfied by an
// absent candidate, while any real requirement is not.
func ComputeMatchFeatures(rows *dataset.TrainingRows) {
	for _, row := range rows.Items {
		var requiredEnglish, requiredSpanish int
		if row.Posting != nil {
			requiredEnglish = row.Posting.EnglishLevel
			requiredSpanish = row.Posting.SpanishLevel
		}

		var knownEnglish, knownSpanish int
		if row.Candidate != nil {
			knownEnglish = row.Candidate.EnglishLevel
			knownSpanish = row.Candidate.SpanishLevel
		}

		row.EnglishOK = 0
		if knownEnglish >= requiredEnglish {
			row.EnglishOK = 1
		}
		row.SpanishOK = 0
		if knownSpanish >= requiredSpanish {
			row.SpanishOK = 1
		}

		row.TotalTechs = 0
		row.SkillsMatched = 0
		if row.Posting != nil {
			for _, flagged := range row.Posting.TechFlags {
				row.TotalTechs += flagged
			}
			if row.Candidate != nil {
				for key, flagged := range row.Posting.TechFlags {
					if flagged == 1 && row.Candidate.SkillFlags[key] == 1 {
						row.SkillsMatched++
					}
				}
			}
		}

		row.SkillsMissing = row.TotalTechs - row.SkillsMatched
		if row.SkillsMissing < 0 {
			row.SkillsMissing = 0
		}
	}
}
