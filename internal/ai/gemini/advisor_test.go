package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/recrutaml/recruta/internal/ai"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func TestAdvisorSuggestVocabulary(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" +
		`[{"status": "encaminhado ao requisitante", "outcome": "ambiguous", "reason": "processo em andamento"},
		  {"status": "contratado como hunting", "outcome": "success", "reason": "contratação efetivada"}]` +
		"\n```"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	suggestions, err := advisor.SuggestVocabulary(context.Background(),
		[]string{"encaminhado ao requisitante", "contratado como hunting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Outcome != ai.OutcomeAmbiguous {
		t.Fatalf("unexpected outcome: %q", suggestions[0].Outcome)
	}
	if suggestions[1].Outcome != ai.OutcomeSuccess {
		t.Fatalf("unexpected outcome: %q", suggestions[1].Outcome)
	}
	if suggestions[1].Reason == "" {
		t.Fatalf("expected reason to be populated")
	}
	if !strings.Contains(stub.lastPrompt, "encaminhado ao requisitante") {
		t.Fatalf("expected statuses in prompt")
	}
}

func TestAdvisorFillsMissingStatuses(t *testing.T) {
	stub := &stubGenerator{response: `[{"status": "aprovado", "outcome": "success", "reason": "ok"}]`}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	suggestions, err := advisor.SuggestVocabulary(context.Background(), []string{"aprovado", "pausado"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("every requested status needs a suggestion, got %d", len(suggestions))
	}
	if suggestions[1].Status != "pausado" || suggestions[1].Outcome != ai.OutcomeAmbiguous {
		t.Fatalf("uncovered status must come back ambiguous: %+v", suggestions[1])
	}
}

func TestAdvisorEmptyInput(t *testing.T) {
	stub := &stubGenerator{response: "[]"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	suggestions, err := advisor.SuggestVocabulary(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestions != nil {
		t.Fatalf("expected no suggestions and no API call, got %v", suggestions)
	}
	if stub.lastPrompt != "" {
		t.Fatalf("no prompt expected for empty input")
	}
}

func TestAdvisorRejectsMalformedResponse(t *testing.T) {
	stub := &stubGenerator{response: "desculpe, não consegui"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	if _, err := advisor.SuggestVocabulary(context.Background(), []string{"aprovado"}); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

type fakeModels struct {
	mu        sync.Mutex
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected call")
	}
	res := f.responses[f.calls]
	f.calls++
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{resp: textResponse("retry ok")},
	}}
	g := &Generator{models: models, model: "gemini-test", maxRetries: 2, logger: zap.NewNop()}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	originalSleep := sleep
	sleep = func(time.Duration) {}
	defer func() { sleep = originalSleep }()

	tempErr := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}
	models := &fakeModels{responses: []fakeResponse{{err: tempErr}, {err: tempErr}}}
	g := &Generator{models: models, model: "gemini-test", maxRetries: 2, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorDoesNotRetryPermanentError(t *testing.T) {
	models := &fakeModels{responses: []fakeResponse{
		{err: genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}},
	}}
	g := &Generator{models: models, model: "gemini-test", maxRetries: 3, logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for permanent failure")
	}
	if models.calls != 1 {
		t.Fatalf("expected single call, got %d", models.calls)
	}
}
