package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"ats-backend/internal/llm"
	"ats-backend/internal/shared/telemetry"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAnalysis     = errors.New("transcript analysis failed")
)

// Insights is the structured feedback derived from an interview transcript.
type Insights struct {
	OverallScore      int               `json:"overallScore"`
	OverallFeedback   string            `json:"overallFeedback"`
	Communication     SkillAssessment   `json:"communication"`
	QuestionSummaries []QuestionSummary `json:"questionSummaries"`
	SoftSkillSummary  string            `json:"softSkillSummary"`
}

type SkillAssessment struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type QuestionSummary struct {
	Question string `json:"question"`
	Summary  string `json:"summary"`
}

// Service turns call transcripts into structured interview insights.
type Service struct {
	LLM llm.Client
}

// Analyze runs the transcript and the main question list through the model
// and parses the structured feedback. The question list anchors the
// per-question summaries; an empty transcript is rejected up front.
func (s *Service) Analyze(ctx context.Context, transcript string, mainQuestions []string) (Insights, error) {
	if strings.TrimSpace(transcript) == "" {
		return Insights{}, fmt.Errorf("%w: transcript is required", ErrInvalidInput)
	}

	var numbered strings.Builder
	for i, q := range mainQuestions {
		fmt.Fprintf(&numbered, "%d. %s\n", i+1, q)
	}

	raw, err := s.LLM.Complete(ctx, llm.Request{
		System:   llm.AnalyticsSystemPrompt,
		User:     llm.AnalyticsPrompt(transcript, numbered.String()),
		JSONOnly: true,
	})
	if err != nil {
		return Insights{}, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	insights, err := ParseInsights(raw)
	if err != nil {
		return Insights{}, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	telemetry.Info("analytics.generated", map[string]any{
		"overall_score": insights.OverallScore,
		"questions":     len(insights.QuestionSummaries),
	})
	return insights, nil
}

// ParseInsights decodes the model's JSON response. The required top-level
// keys are checked before unmarshalling so a truncated or off-contract
// response fails loudly instead of producing zero-valued feedback.
func ParseInsights(raw string) (Insights, error) {
	if !gjson.Valid(raw) {
		return Insights{}, errors.New("response is not valid JSON")
	}
	for _, key := range []string{"overallScore", "overallFeedback", "communication", "questionSummaries", "softSkillSummary"} {
		if !gjson.Get(raw, key).Exists() {
			return Insights{}, fmt.Errorf("response missing %q", key)
		}
	}

	var insights Insights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return Insights{}, fmt.Errorf("decode insights: %w", err)
	}
	return insights, nil
}
