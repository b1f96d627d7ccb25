// Package modeling turns joined training rows into labeled, numeric
// feature material: outcome labels from the status vocabularies, language and
// technology match features, and the one-hot encoded feature table.
package modeling

import (
	"sort"
	"strings"

	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/prep"
)

// Vocabulary holds the status values that decide a row's outcome. Statuses
// in neither list leave the row unlabeled and excluded from training.
type Vocabulary struct {
	Success []string `mapstructure:"success"`
	Failure []string `mapstructure:"failure"`
}

// LabelStats summarizes one labeling pass.
type LabelStats struct {
	Dropped  int // rows removed for missing posting title or candidate name
	Skipped  int // rows with a status outside both vocabularies
	Positive int
	Negative int
}

type labeler struct {
	success map[string]struct{}
	failure map[string]struct{}
}

func newLabeler(vocab Vocabulary) *labeler {
	l := &labeler{
		success: make(map[string]struct{}, len(vocab.Success)),
		failure: make(map[string]struct{}, len(vocab.Failure)),
	}
	for _, status := range vocab.Success {
		l.success[fold(status)] = struct{}{}
	}
	for _, status := range vocab.Failure {
		l.failure[fold(status)] = struct{}{}
	}
	return l
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildLabels filters the joined rows down to the labeled training set.
// Rows missing the posting title or the candidate name are dropped first;
// the rest are labeled 1 for a success status, 0 for a failure status, and
// excluded when the status is in neither vocabulary. The second return value
// lists the distinct excluded statuses, sorted, for vocabulary review.
func BuildLabels(rows *dataset.TrainingRows, vocab Vocabulary) (*dataset.TrainingRows, []string, LabelStats) {
	l := newLabeler(vocab)

	labeled := &dataset.TrainingRows{}
	stats := LabelStats{}
	unlabeled := make(map[string]struct{})

	for _, row := range rows.Items {
		if missing(row.Prospect.PostingTitle) || missing(row.Prospect.CandidateName) {
			stats.Dropped++
			continue
		}
		status := fold(row.Prospect.Status)
		if _, ok := l.success[status]; ok {
			row.Label = 1
			stats.Positive++
			labeled.Items = append(labeled.Items, row)
			continue
		}
		if _, ok := l.failure[status]; ok {
			row.Label = 0
			stats.Negative++
			labeled.Items = append(labeled.Items, row)
			continue
		}
		stats.Skipped++
		if status != "" {
			unlabeled[status] = struct{}{}
		}
	}

	distinct := make([]string, 0, len(unlabeled))
	for status := range unlabeled {
		distinct = append(distinct, status)
	}
	sort.Strings(distinct)

	return labeled, distinct, stats
}

func missing(s string) bool {
	return s == "" || s == prep.Placeholder
}
