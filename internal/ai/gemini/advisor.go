package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/ai"
	"github.com/recrutaml/recruta/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Advisor asks Gemini to sort unlabeled status values into the success and
// failure vocabularies. Its output is a proposal for a human, never an input
// to the pipeline.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewAdvisor wraps a content generator. maxLogLength caps prompt and
// response previews in debug logs; zero selects the default.
func NewAdvisor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		logger:    logger.WithCommonFields(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

// SuggestVocabulary classifies the given statuses. Statuses the response
// does not cover come back as ambiguous so the caller always receives one
// suggestion per input.
func (a *Advisor) SuggestVocabulary(ctx context.Context, statuses []string) ([]ai.VocabSuggestion, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	statusesJSON, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal statuses: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{STATUSES_JSON}}", string(statusesJSON))

	a.logger.Debug("gemini vocabulary request",
		zap.Int("statuses", len(statuses)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini vocabulary response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	parsed, err := parseSuggestions(raw)
	if err != nil {
		return nil, err
	}

	// Re-key on the requested statuses: the model must not add or drop any.
	byStatus := make(map[string]ai.VocabSuggestion, len(parsed))
	for _, suggestion := range parsed {
		byStatus[strings.ToLower(strings.TrimSpace(suggestion.Status))] = suggestion
	}

	suggestions := make([]ai.VocabSuggestion, 0, len(statuses))
	for _, status := range statuses {
		if suggestion, ok := byStatus[strings.ToLower(strings.TrimSpace(status))]; ok {
			suggestion.Status = status
			suggestions = append(suggestions, suggestion)
			continue
		}
		suggestions = append(suggestions, ai.VocabSuggestion{
			Status:  status,
			Outcome: ai.OutcomeAmbiguous,
			Reason:  "sem classificação na resposta do modelo",
		})
	}

	return suggestions, nil
}

func parseSuggestions(raw string) ([]ai.VocabSuggestion, error) {
	cleaned := extractJSON(raw)

	var entries []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &entries); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	suggestions := make([]ai.VocabSuggestion, 0, len(entries))
	for _, entry := range entries {
		suggestions = append(suggestions, ai.VocabSuggestion{
			Status:  coerceString(entry["status"]),
			Outcome: coerceOutcome(entry["outcome"]),
			Reason:  coerceString(entry["reason"]),
		})
	}
	return suggestions, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceOutcome(v any) ai.Outcome {
	switch strings.ToLower(coerceString(v)) {
	case "success", "sucesso":
		return ai.OutcomeSuccess
	case "failure", "falha", "fracasso":
		return ai.OutcomeFailure
	default:
		return ai.OutcomeAmbiguous
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
