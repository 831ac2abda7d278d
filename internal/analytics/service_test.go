package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ats-backend/internal/llm"
)

type staticLLM struct {
	resp     string
	err      error
	lastUser string
}

func (s *staticLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	_ = ctx
	s.lastUser = req.User
	return s.resp, s.err
}

const validInsightsJSON = `{
  "overallScore": 72,
  "overallFeedback": "Clear and relevant answers throughout.",
  "communication": {"score": 8, "feedback": "Concise and structured."},
  "questionSummaries": [
    {"question": "1. Why this role?", "summary": "Motivated by the domain."},
    {"question": "2. Biggest project?", "summary": "Not Asked"}
  ],
  "softSkillSummary": "Confident, adaptable, and decisive under mild pressure."
}`

func TestAnalyzeParsesInsights(t *testing.T) {
	client := &staticLLM{resp: validInsightsJSON}
	svc := &Service{LLM: client}

	got, err := svc.Analyze(context.Background(), "agent: hello\nuser: hi", []string{"Why this role?", "Biggest project?"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.OverallScore != 72 {
		t.Fatalf("overall score = %d, want 72", got.OverallScore)
	}
	if got.Communication.Score != 8 {
		t.Fatalf("communication score = %d, want 8", got.Communication.Score)
	}
	if len(got.QuestionSummaries) != 2 || got.QuestionSummaries[1].Summary != "Not Asked" {
		t.Fatalf("question summaries = %+v", got.QuestionSummaries)
	}
	if !strings.Contains(client.lastUser, "1. Why this role?") {
		t.Fatalf("main questions not numbered into prompt:\n%s", client.lastUser)
	}
}

func TestAnalyzeRejectsEmptyTranscript(t *testing.T) {
	svc := &Service{LLM: &staticLLM{resp: validInsightsJSON}}
	if _, err := svc.Analyze(context.Background(), "   ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestAnalyzeCompletionFailure(t *testing.T) {
	svc := &Service{LLM: &staticLLM{err: errors.New("upstream 500")}}
	if _, err := svc.Analyze(context.Background(), "transcript", nil); !errors.Is(err, ErrAnalysis) {
		t.Fatalf("got %v, want ErrAnalysis", err)
	}
}

func TestParseInsightsMissingKey(t *testing.T) {
	raw := `{"overallScore": 50, "overallFeedback": "ok"}`
	if _, err := ParseInsights(raw); err == nil {
		t.Fatal("expected error for missing keys")
	}
}

func TestParseInsightsInvalidJSON(t *testing.T) {
	if _, err := ParseInsights("Sure, here is the analysis:"); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
