package applications

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ats-backend/internal/interviews"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/storage/object/local"
)

type staticLLM struct {
	resp string
	err  error
}

func (s staticLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	_ = ctx
	_ = req
	return s.resp, s.err
}

// routingLLM answers extraction and scoring calls differently, keyed on the
// system prompt.
type routingLLM struct {
	extractResp string
	extractErr  error
	scoreResp   string
	scoreErr    error
}

func (r routingLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	_ = ctx
	if req.System == llm.ScoringSystemPrompt {
		return r.scoreResp, r.scoreErr
	}
	return r.extractResp, r.extractErr
}

type textExtractor struct {
	text string
	err  error
}

func (e textExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	_ = ctx
	_ = data
	return e.text, e.err
}

func setupService(t *testing.T, client llm.Client) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:      repo,
		Store:     local.New(t.TempDir(), "http://localhost:8080"),
		Extractor: textExtractor{text: "ten years of Go"},
		LLM:       client,
	}
	return svc, repo
}

func validSubmission() Submission {
	return Submission{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "555-0100",
		JobPosition: "42-Backend Engineer",
		FileName:    "resume.pdf",
		File:        []byte("%PDF-1.4 fake"),
	}
}

func TestSubmitHappyPath(t *testing.T) {
	svc, repo := setupService(t, routingLLM{
		extractResp: `{"skills":["Go"],"summary":"Strong backend engineer."}`,
		scoreResp:   "8",
	})

	id, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	app, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if app.InterviewID != "42" || app.JobPosition != "Backend Engineer" {
		t.Fatalf("position token not split: %+v", app)
	}
	if app.ParsedResume != "ten years of Go" {
		t.Fatalf("parsed resume = %q", app.ParsedResume)
	}
	if len(app.AnalyzedResume.Skills) != 1 || app.AnalyzedResume.Skills[0] != "Go" {
		t.Fatalf("profile not stored: %+v", app.AnalyzedResume)
	}
	if app.ResumeScore != 8 {
		t.Fatalf("score = %d, want 8", app.ResumeScore)
	}
	if app.Status != StatusNew {
		t.Fatalf("status = %q, want %q", app.Status, StatusNew)
	}
	if !strings.Contains(app.ResumeURL, "/files/") {
		t.Fatalf("resume url = %q", app.ResumeURL)
	}
}

func TestSubmitDegradesOnCompletionFailure(t *testing.T) {
	// Enrichment is best-effort: a dead LLM must not lose the submission.
	svc, repo := setupService(t, staticLLM{err: errors.New("upstream 500")})

	id, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	app, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if app.ResumeScore != 0 {
		t.Fatalf("score = %d, want 0", app.ResumeScore)
	}
	if len(app.AnalyzedResume.Skills) != 0 || app.AnalyzedResume.Summary != "" {
		t.Fatalf("profile not empty: %+v", app.AnalyzedResume)
	}
	if app.ParsedResume != "ten years of Go" {
		t.Fatalf("raw text must survive degradation, got %q", app.ParsedResume)
	}
}

func TestSubmitDegradesOnMalformedProfile(t *testing.T) {
	svc, repo := setupService(t, routingLLM{
		extractResp: `Sure! Here is the JSON you asked for: {...}`,
		scoreResp:   "7",
	})

	id, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	app, _ := repo.GetByID(context.Background(), id)
	if app.AnalyzedResume.Summary != "" || len(app.AnalyzedResume.Skills) != 0 {
		t.Fatalf("malformed profile should degrade to empty, got %+v", app.AnalyzedResume)
	}
	if app.ResumeScore != 7 {
		t.Fatalf("score = %d, want 7", app.ResumeScore)
	}
}

func TestSubmitMissingFieldsRejected(t *testing.T) {
	svc, _ := setupService(t, staticLLM{})
	sub := validSubmission()
	sub.Phone = "   "
	if _, err := svc.Submit(context.Background(), sub); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestSubmitExtractionFailureIsFatal(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:      repo,
		Store:     local.New(t.TempDir(), "http://localhost:8080"),
		Extractor: textExtractor{err: errors.New("encrypted pdf")},
		LLM:       staticLLM{},
	}
	if _, err := svc.Submit(context.Background(), validSubmission()); !errors.Is(err, ErrExtraction) {
		t.Fatalf("got %v, want ErrExtraction", err)
	}
	apps, _ := repo.List(context.Background())
	if len(apps) != 0 {
		t.Fatalf("failed extraction must not persist, got %d rows", len(apps))
	}
}

func TestParsePositionToken(t *testing.T) {
	cases := []struct {
		raw         string
		interviewID string
		position    string
		wantErr     bool
	}{
		{"iv-1-Backend Engineer", "iv", "1-Backend Engineer", false},
		{"42-Data Scientist", "42", "Data Scientist", false},
		{"abc123-Senior Go Developer", "abc123", "Senior Go Developer", false},
		{"nodash", "", "", true},
		{"-Backend Engineer", "", "", true},
		{"", "", "", true},
	}
	for _, tc := range cases {
		id, pos, err := ParsePositionToken(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("%q: got %v, want ErrInvalidInput", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.raw, err)
		}
		if id != tc.interviewID || pos != tc.position {
			t.Fatalf("%q: got (%q, %q), want (%q, %q)", tc.raw, id, pos, tc.interviewID, tc.position)
		}
	}
}

func TestParsePositionTokenRoundTripsMintedIDs(t *testing.T) {
	minted := interviews.NewID()
	id, pos, err := ParsePositionToken(minted + "-Backend Engineer")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != minted || pos != "Backend Engineer" {
		t.Fatalf("got (%q, %q), want (%q, %q)", id, pos, minted, "Backend Engineer")
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"8", 8},
		{"0", 0},
		{"10", 10},
		{"11", 10},
		{"99", 10},
		{"-3", 0},
		{"7 out of 10", 7},
		{"Score: 6", 6},
		{"no digits here", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseScore(tc.raw); got != tc.want {
			t.Fatalf("ParseScore(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

type recordingInviter struct {
	interviewID string
	email       string
	count       int
	err         error
}

func (r *recordingInviter) Generate(ctx context.Context, interviewID, email string, count int) error {
	_ = ctx
	r.interviewID = interviewID
	r.email = email
	r.count = count
	return r.err
}

type recordingMailer struct {
	to   string
	name string
	url  string
	err  error
}

func (r *recordingMailer) SendScreeningInvite(ctx context.Context, to, applicantName, interviewURL string) error {
	_ = ctx
	r.to = to
	r.name = applicantName
	r.url = interviewURL
	return r.err
}

func TestInviteGeneratesMailsAndAdvancesStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t, staticLLM{})
	inviter := &recordingInviter{}
	mail := &recordingMailer{}
	svc.Inviter = inviter
	svc.Mailer = mail
	svc.InterviewBaseURL = "http://localhost:3000/call/"

	id, err := repo.Create(ctx, Application{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "555-0100",
		InterviewID: "iv-1",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Invite(ctx, id, 5); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if inviter.interviewID != "iv-1" || inviter.email != "ada@example.com" || inviter.count != 5 {
		t.Fatalf("inviter called with %+v", inviter)
	}
	if mail.to != "ada@example.com" || mail.name != "Ada Lovelace" {
		t.Fatalf("mailer called with %+v", mail)
	}
	if want := "http://localhost:3000/call/iv-1?email=ada%40example.com"; mail.url != want {
		t.Fatalf("interview url = %q, want %q", mail.url, want)
	}

	app, _ := repo.GetByID(ctx, id)
	if app.Status != StatusScreening {
		t.Fatalf("status = %q, want %q", app.Status, StatusScreening)
	}
}

func TestInviteFailedGenerationSendsNoMail(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t, staticLLM{})
	inviter := &recordingInviter{err: errors.New("generation failed")}
	mail := &recordingMailer{}
	svc.Inviter = inviter
	svc.Mailer = mail
	svc.InterviewBaseURL = "http://localhost:3000/call"

	id, err := repo.Create(ctx, Application{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "555-0100",
		InterviewID: "iv-1",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Invite(ctx, id, 5); err == nil {
		t.Fatal("expected error from failed generation")
	}
	if mail.to != "" {
		t.Fatalf("invite mail sent despite failed generation: %+v", mail)
	}
	app, _ := repo.GetByID(ctx, id)
	if app.Status != StatusNew {
		t.Fatalf("status advanced despite failed generation: %q", app.Status)
	}
}
