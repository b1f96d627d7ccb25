// Package ai defines the advisory interface for status-vocabulary review.
// Advisors never feed the pipeline directly: their suggestions go to a human
// who decides what enters the configuration.
package ai

import "context"

// Outcome is the advisor's judgement for one status value.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeAmbiguous Outcome = "ambiguous"
)

// VocabSuggestion classifies one unlabeled status string.
type VocabSuggestion struct {
	Status  string
	Outcome Outcome
	Reason  string
}

// Advisor proposes vocabulary placements for statuses the configured
// success and failure lists do not cover.
type Advisor interface {
	SuggestVocabulary(ctx context.Context, statuses []string) ([]VocabSuggestion, error)
}
