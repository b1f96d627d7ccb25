package prep

import (
	"regexp"
	"strings"
)

// Work-modality values shared by postings and prospect events.
const (
	ModalityRemote      = "Remoto"
	ModalityHybrid      = "Híbrido"
	ModalityOnSite      = "Presencial"
	ModalityUnspecified = "Não especificado"
)

// ClassifyModality inspects free text for work-modality signals. A hybrid
// mention overrides a co-occurring remote mention; the check order matters.
func ClassifyModality(text string) string {
	folded := strings.ToLower(text)
	hybrid := strings.Contains(folded, "híbrido") || strings.Contains(folded, "hibrido")
	if strings.Contains(folded, "remoto") {
		if hybrid {
			return ModalityHybrid
		}
		return ModalityRemote
	}
	if hybrid {
		return ModalityHybrid
	}
	if strings.Contains(folded, "presencial") || strings.Contains(folded, "no escritório") {
		return ModalityOnSite
	}
	return ModalityUnspecified
}

var (
	remotePattern = regexp.MustCompile(`remoto|home office`)
	hybridPattern = regexp.MustCompile(`h[íi]brido`)
	onSitePattern = regexp.MustCompile(`presencial`)
)

// StandardizeModality maps the short modality labels carried by prospect
// events onto the same closed set used for postings.
func StandardizeModality(modality string) string {
	folded := strings.ToLower(modality)
	switch {
	case remotePattern.MatchString(folded):
		return ModalityRemote
	case hybridPattern.MatchString(folded):
		return ModalityHybrid
	case onSitePattern.MatchString(folded):
		return ModalityOnSite
	default:
		return ModalityUnspecified
	}
}
