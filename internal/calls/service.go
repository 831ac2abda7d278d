package calls

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ats-backend/internal/interviewers"
	"ats-backend/internal/questions"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/voice"
)

// ErrOrigination signals a failed call origination. Never retried: a
// duplicate live call is worse than a surfaced error.
var ErrOrigination = errors.New("call origination failed")

// ErrInterviewerNotFound signals an unresolvable interviewer id.
var ErrInterviewerNotFound = errors.New("interviewer not found")

// Service registers voice-agent screening calls.
type Service struct {
	Interviewers interviewers.Repo
	Questions    *questions.Service
	Voice        voice.Client
}

// RegisterInput carries the call-registration request.
type RegisterInput struct {
	InterviewerID string
	// DynamicData holds the template variables for the voice agent. The
	// interview_id and email keys define the tailored-question scope;
	// AdhocQuestions are the session-specific questions supplied by the
	// caller.
	DynamicData    map[string]string
	AdhocQuestions []string
}

// Register resolves the interviewer's agent identity, merges every
// historical tailored-question batch with the ad-hoc questions, and
// originates the call with the final variable set.
func (s *Service) Register(ctx context.Context, in RegisterInput) (voice.RegisterCallResponse, error) {
	interviewer, err := s.Interviewers.GetByID(ctx, in.InterviewerID)
	if err != nil {
		if errors.Is(err, interviewers.ErrNotFound) {
			return voice.RegisterCallResponse{}, ErrInterviewerNotFound
		}
		return voice.RegisterCallResponse{}, err
	}

	interviewID := in.DynamicData["interview_id"]
	email := in.DynamicData["email"]

	merged, err := s.Questions.MergeForScope(ctx, interviewID, email, in.AdhocQuestions)
	if err != nil {
		return voice.RegisterCallResponse{}, fmt.Errorf("merge questions: %w", err)
	}

	vars := make(map[string]string, len(in.DynamicData)+1)
	for k, v := range in.DynamicData {
		vars[k] = v
	}
	vars["questions"] = strings.Join(merged, ", ")

	resp, err := s.Voice.CreateWebCall(ctx, voice.RegisterCallInput{
		AgentID:          interviewer.AgentID,
		DynamicVariables: vars,
	})
	if err != nil {
		return voice.RegisterCallResponse{}, fmt.Errorf("%w: %v", ErrOrigination, err)
	}

	telemetry.Info("calls.registered", map[string]any{
		"call_id":      resp.CallID,
		"agent_id":     interviewer.AgentID,
		"interview_id": interviewID,
		"questions":    len(merged),
	})
	return resp, nil
}
