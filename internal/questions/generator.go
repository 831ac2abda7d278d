package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"ats-backend/internal/applications"
	"ats-backend/internal/interviews"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/telemetry"
)

// Service generates tailored-question batches and merges them for calls.
type Service struct {
	Repo       Repo
	Apps       applications.Repo
	Interviews interviews.Repo
	LLM        llm.Client
}

// Generate builds a fresh tailored-question batch for (interview id,
// candidate email) from the candidate's latest parsed resume. A failed or
// empty generation is fatal: no batch is ever persisted for it.
func (s *Service) Generate(ctx context.Context, interviewID, candidateEmail string, count int) error {
	if strings.TrimSpace(candidateEmail) == "" || strings.TrimSpace(interviewID) == "" {
		return fmt.Errorf("%w: interviewID and candidateEmail are required", ErrInvalidInput)
	}
	if count <= 0 {
		return fmt.Errorf("%w: question count must be positive", ErrInvalidInput)
	}

	app, err := s.Apps.LatestByEmail(ctx, candidateEmail)
	if err != nil {
		if errors.Is(err, applications.ErrNotFound) {
			return fmt.Errorf("%w: no parsed resume found for this email", ErrNotFound)
		}
		return err
	}

	interview, err := s.Interviews.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, interviews.ErrNotFound) {
			return fmt.Errorf("%w: interview %s", ErrNotFound, interviewID)
		}
		return err
	}

	content, err := s.LLM.Complete(ctx, llm.Request{
		System: llm.QuestionsSystemPrompt,
		User: llm.QuestionsPrompt(llm.QuestionsPromptInput{
			Name:      interview.Name,
			Objective: interview.Objective,
			Number:    count,
			JDText:    interview.JD,
			CVText:    app.ParsedResume,
		}),
		JSONOnly: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	generated, err := ParseQuestions(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	normalized := make([]Question, 0, len(generated))
	for _, q := range generated {
		trimmed := strings.TrimSpace(q)
		if trimmed == "" {
			return fmt.Errorf("%w: each tailored question must be a non-empty string", ErrInvalidInput)
		}
		normalized = append(normalized, Question{Question: trimmed})
	}

	batch := Batch{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		InterviewID:    interviewID,
		CandidateEmail: candidateEmail,
		CandidateName:  app.FullName,
		ApplicationID:  app.ID,
		Questions:      normalized,
	}
	if err := s.Repo.Create(ctx, batch); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	telemetry.Info("questions.batch.created", map[string]any{
		"batch_id":     batch.ID,
		"interview_id": interviewID,
		"count":        len(normalized),
	})
	return nil
}

// ParseQuestions validates untrusted completion output and extracts the
// questions array. An empty or malformed array is an error, never an empty
// result.
func ParseQuestions(raw string) ([]string, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid questions json")
	}
	arr := gjson.Get(raw, "questions")
	if !arr.IsArray() {
		return nil, fmt.Errorf("questions array missing")
	}
	var out []string
	arr.ForEach(func(_, item gjson.Result) bool {
		out = append(out, item.Get("question").String())
		return true
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("questions array empty")
	}
	return out, nil
}
