package ingest

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/dataset"
)

// rawApplication mirrors one entry of a posting's prospects list.
type rawApplication struct {
	Name      string `mapstructure:"nome"`
	Code      string `mapstructure:"codigo"`
	Status    string `mapstructure:"situacao_candidado"`
	Applied   string `mapstructure:"data_candidatura"`
	Updated   string `mapstructure:"ultima_atualizacao"`
	Comment   string `mapstructure:"comentario"`
	Recruiter string `mapstructure:"recrutador"`
}

// LoadProspects reads the raw prospects document and normalizes it.
func LoadProspects(path string, logger *zap.Logger) *dataset.Prospects {
	document, ok := readDocument(path, logger)
	if !ok {
		return &dataset.Prospects{}
	}
	return NormalizeProspects(document)
}

// NormalizeProspects fans out the per-posting prospect lists into one row per
// application event. The posting title and modality recorded on the source
// posting are carried onto every event so labeling can check them even when
// the posting join later dangles. Entries that do not decode are skipped.
func NormalizeProspects(document map[string]any) *dataset.Prospects {
	prospects := &dataset.Prospects{}

	ids := make([]string, 0, len(document))
	for id := range document {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, postingID := range ids {
		record, ok := document[postingID].(map[string]any)
		if !ok {
			continue
		}

		title := stringField(record, "titulo")
		modality := stringField(record, "modalidade")

		entries, ok := record["prospects"].([]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			var application rawApplication
			if err := mapstructure.Decode(entry, &application); err != nil {
				continue
			}
			prospects.Items = append(prospects.Items, &dataset.Prospect{
				PostingID:     postingID,
				PostingTitle:  title,
				RawModality:   modality,
				CandidateID:   application.Code,
				CandidateName: application.Name,
				Status:        application.Status,
				AppliedRaw:    application.Applied,
				UpdatedRaw:    application.Updated,
				Comments:      application.Comment,
				Recruiter:     application.Recruiter,
			})
		}
	}
	return prospects
}
