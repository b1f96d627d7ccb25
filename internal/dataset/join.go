package dataset

// TrainingRow is one prospect event enriched with its posting and candidate
// records. Posting or Candidate is nil when the foreign key does not resolve;
// downstream stages treat the missing side as "no information" instead of
// failing. The row only exists between the join and the feature matrix.
type TrainingRow struct {
	Prospect  *Prospect
	Posting   *Posting
	Candidate *Candidate

	// Candidate-vs-posting compatibility features.
	EnglishOK     int
	SpanishOK     int
	TotalTechs    int
	SkillsMatched int
	SkillsMissing int

	Label int
}

type TrainingRows struct {
	Items []*TrainingRow
}

func (t *TrainingRows) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Items)
}

// Join combines prospects with postings and candidates via two left joins.
// Every prospect row is retained: unmatched sides stay nil and empty side
// tables degrade to a join against nothing rather than an error. The prospect
// keys remain the single source of truth for both identifiers.
func Join(prospects *Prospects, postings *Postings, candidates *Candidates) *TrainingRows {
	rows := &TrainingRows{}
	if prospects.Len() == 0 {
		return rows
	}

	postingIndex := postings.Index()
	candidateIndex := candidates.Index()

	rows.Items = make([]*TrainingRow, 0, prospects.Len())
	for _, prospect := range prospects.Items {
		rows.Items = append(rows.Items, &TrainingRow{
			Prospect:  prospect,
			Posting:   postingIndex[prospect.PostingID],
			Candidate: candidateIndex[prospect.CandidateID],
		})
	}
	return rows
}
