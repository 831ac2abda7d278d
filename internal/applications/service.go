package applications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"ats-backend/internal/extract"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
)

// ScreeningInviter generates a tailored-question batch for an applicant.
type ScreeningInviter interface {
	Generate(ctx context.Context, interviewID, email string, count int) error
}

// InviteMailer delivers the screening-invite email.
type InviteMailer interface {
	SendScreeningInvite(ctx context.Context, to, applicantName, interviewURL string) error
}

// Service runs the resume intake pipeline and the screening-invite flow.
type Service struct {
	Repo      Repo
	Store     object.ObjectStore
	Extractor extract.TextExtractor
	LLM       llm.Client

	// Optional collaborators for the invite flow.
	Inviter          ScreeningInviter
	Mailer           InviteMailer
	InterviewBaseURL string
}

// Submission carries the validated-to-be multipart form fields.
type Submission struct {
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	JobPosition string
	FileName    string
	File        []byte
}

// Submit runs the full intake pipeline and returns the new application id.
// Structured extraction and scoring are best-effort: a completion failure
// there degrades to an empty profile and a zero score rather than losing
// the submission. Upload, text extraction and the final insert are fatal.
func (s *Service) Submit(ctx context.Context, sub Submission) (int64, error) {
	sub.FullName = strings.TrimSpace(sub.FullName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.JobPosition = strings.TrimSpace(sub.JobPosition)

	if sub.FullName == "" || sub.Email == "" || sub.Phone == "" || sub.JobPosition == "" || len(sub.File) == 0 {
		return 0, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}

	interviewID, jobPosition, err := ParsePositionToken(sub.JobPosition)
	if err != nil {
		return 0, err
	}

	_, resumeURL, _, err := s.Store.Save(ctx, sub.FileName, bytes.NewReader(sub.File))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	parsedText, err := s.Extractor.Extract(ctx, sub.File)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	profile := s.extractProfile(ctx, parsedText)
	score := s.scoreResume(ctx, parsedText, jobPosition)

	id, err := s.Repo.Create(ctx, Application{
		FullName:       sub.FullName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		JobPosition:    jobPosition,
		InterviewID:    interviewID,
		CoverLetter:    strings.TrimSpace(sub.CoverLetter),
		ResumeURL:      resumeURL,
		ParsedResume:   parsedText,
		AnalyzedResume: profile,
		ResumeScore:    score,
		Status:         StatusNew,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return id, nil
}

// ParsePositionToken splits a "interviewId-interviewName" token. The first
// hyphen-delimited part is the interview id; the remainder is the job
// position label.
func ParsePositionToken(raw string) (interviewID, jobPosition string, err error) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", fmt.Errorf("%w: invalid job position format", ErrInvalidInput)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func (s *Service) extractProfile(ctx context.Context, parsedText string) ResumeProfile {
	content, err := s.LLM.Complete(ctx, llm.Request{
		System:   llm.ExtractionSystemPrompt,
		User:     llm.ExtractionPrompt(parsedText),
		JSONOnly: true,
	})
	if err != nil {
		telemetry.Error("applications.extract.degraded", map[string]any{"err": err.Error()})
		return ResumeProfile{}
	}

	profile, err := ParseResumeProfile(content)
	if err != nil {
		telemetry.Error("applications.extract.degraded", map[string]any{"err": err.Error()})
		return ResumeProfile{}
	}
	return profile
}

func (s *Service) scoreResume(ctx context.Context, parsedText, jobPosition string) int {
	content, err := s.LLM.Complete(ctx, llm.Request{
		System: llm.ScoringSystemPrompt,
		User:   llm.ScoringPrompt(parsedText, jobPosition),
	})
	if err != nil {
		telemetry.Error("applications.score.degraded", map[string]any{"err": err.Error()})
		return 0
	}
	return ParseScore(content)
}

// ParseResumeProfile validates untrusted completion output and converts it
// to the typed profile shape.
func ParseResumeProfile(raw string) (ResumeProfile, error) {
	if !gjson.Valid(raw) {
		return ResumeProfile{}, fmt.Errorf("invalid profile json")
	}
	var profile ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return ResumeProfile{}, fmt.Errorf("profile shape mismatch: %w", err)
	}
	return profile, nil
}

var scorePattern = regexp.MustCompile(`-?\d+`)

// ParseScore extracts a bounded integer score from raw completion output,
// clamping to [0, 10]. Unparseable input yields 0.
func ParseScore(raw string) int {
	match := scorePattern.FindString(raw)
	if match == "" {
		return 0
	}
	score, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// Invite generates a fresh tailored-question batch for the applicant and
// emails the screening link. The generated batch is fatal-on-failure; the
// invite must never go out without questions behind it.
func (s *Service) Invite(ctx context.Context, applicationID int64, questionCount int) error {
	if s.Inviter == nil || s.Mailer == nil {
		return fmt.Errorf("invite flow not configured")
	}

	app, err := s.Repo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if err := s.Inviter.Generate(ctx, app.InterviewID, app.Email, questionCount); err != nil {
		return err
	}

	interviewURL := fmt.Sprintf("%s/%s?email=%s",
		strings.TrimRight(s.InterviewBaseURL, "/"), app.InterviewID, url.QueryEscape(app.Email))
	if err := s.Mailer.SendScreeningInvite(ctx, app.Email, app.FullName, interviewURL); err != nil {
		return err
	}

	if err := s.Repo.UpdateStatus(ctx, app.ID, StatusScreening); err != nil {
		telemetry.Error("applications.invite.status", map[string]any{
			"application_id": app.ID,
			"err":            err.Error(),
		})
	}
	return nil
}
