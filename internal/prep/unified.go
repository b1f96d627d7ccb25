package prep

import "strings"

// joinFields lowercases and concatenates the given fields into one text
// blob. When skipPlaceholder is set, fields holding only the placeholder are
// left out so "indefinido" tokens do not pollute every row.
func joinFields(skipPlaceholder bool, fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		folded := strings.ToLower(strings.TrimSpace(field))
		if folded == "" {
			continue
		}
		if skipPlaceholder && folded == Placeholder {
			continue
		}
		parts = append(parts, folded)
	}
	return strings.Join(parts, " ")
}

// UnifiedPostingText builds the matching text for a posting. All fields are
// included unconditionally, placeholder or not; candidate text is built the
// other way around and the asymmetry is intentional.
func UnifiedPostingText(title, activities, competences string) string {
	return joinFields(false, title, activities, competences)
}

// UnifiedCandidateText builds the matching text for a candidate, skipping
// placeholder-only fields.
func UnifiedCandidateText(experienceText, experienceTitles, title string) string {
	return joinFields(true, experienceText, experienceTitles, title)
}
