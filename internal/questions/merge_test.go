package questions

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func batchAt(t *testing.T, createdAt time.Time, qs ...string) Batch {
	t.Helper()
	questions := make([]Question, 0, len(qs))
	for _, q := range qs {
		questions = append(questions, Question{Question: q})
	}
	return Batch{
		ID:             "batch-" + createdAt.Format(time.RFC3339Nano),
		CreatedAt:      createdAt,
		InterviewID:    "iv-1",
		CandidateEmail: "ada@example.com",
		Questions:      questions,
	}
}

func TestMergeDeduplicatesAcrossBatches(t *testing.T) {
	now := time.Now().UTC()
	newer := batchAt(t, now, "Q1", "Q2")
	older := batchAt(t, now.Add(-time.Hour), "Q2", "Q3")

	got := Merge([]Batch{newer, older}, nil)
	want := []string{"Q1", "Q2", "Q3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	now := time.Now().UTC()
	batches := []Batch{
		batchAt(t, now, "Tell me about your last project.", "Why this role?"),
		batchAt(t, now.Add(-time.Minute), "Why this role?"),
	}

	first := Merge(batches, []string{"Any questions for us?"})
	second := Merge(batches, []string{"Any questions for us?"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated merge differs: %v vs %v", first, second)
	}
}

func TestMergeTrimsAndSkipsBlankQuestions(t *testing.T) {
	now := time.Now().UTC()
	batches := []Batch{batchAt(t, now, "  Q1  ", "", "   ", "Q1")}

	got := Merge(batches, nil)
	want := []string{"Q1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeAppendsAdhocVerbatim(t *testing.T) {
	now := time.Now().UTC()
	batches := []Batch{batchAt(t, now, "Q1")}

	// Ad-hoc questions are the caller's responsibility: they are not
	// trimmed and not deduplicated against the historical set.
	got := Merge(batches, []string{"Q1", " Q2 "})
	want := []string{"Q1", "Q1", " Q2 "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeEmptyInputsYieldEmptyResult(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Fatalf("merge of nothing = %v, want empty", got)
	}
}

func TestMergeForScopeIsolatesScopes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	mine := batchAt(t, now, "Q1")
	other := batchAt(t, now, "Q-other")
	other.CandidateEmail = "grace@example.com"
	if err := repo.Create(ctx, mine); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := &Service{Repo: repo}
	got, err := svc.MergeForScope(ctx, "iv-1", "ada@example.com", nil)
	if err != nil {
		t.Fatalf("merge for scope: %v", err)
	}
	want := []string{"Q1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}

func TestMergeForScopeNewestBatchWinsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()

	if err := repo.Create(ctx, batchAt(t, now.Add(-time.Hour), "Q2", "Q3")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, batchAt(t, now, "Q1", "Q2")); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc := &Service{Repo: repo}
	got, err := svc.MergeForScope(ctx, "iv-1", "ada@example.com", nil)
	if err != nil {
		t.Fatalf("merge for scope: %v", err)
	}
	want := []string{"Q1", "Q2", "Q3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
}
