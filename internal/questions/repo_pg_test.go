package questions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresQuestionPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	batch := Batch{
		ID:             "b-1",
		CreatedAt:      time.Now().UTC(),
		InterviewID:    "iv-1",
		CandidateEmail: "ada@example.com",
		CandidateName:  "Ada Lovelace",
		ApplicationID:  3,
		Questions:      []Question{{Question: "Q1"}, {Question: "Q2"}},
	}

	mock.ExpectExec("INSERT INTO interview_candidates").
		WithArgs(
			batch.ID,
			batch.CreatedAt,
			batch.InterviewID,
			batch.CandidateEmail,
			batch.CandidateName,
			batch.ApplicationID,
			[]byte(`[{"question":"Q1"},{"question":"Q2"}]`),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), batch); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateStoresNullApplicationID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	batch := Batch{
		ID:             "b-3",
		CreatedAt:      time.Now().UTC(),
		InterviewID:    "iv-1",
		CandidateEmail: "ada@example.com",
		Questions:      []Question{{Question: "Q1"}},
	}

	mock.ExpectExec("INSERT INTO interview_candidates").
		WithArgs(
			batch.ID,
			batch.CreatedAt,
			batch.InterviewID,
			batch.CandidateEmail,
			batch.CandidateName,
			nil,
			[]byte(`[{"question":"Q1"}]`),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), batch); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByScopeDecodesBatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "interview_id", "candidate_email",
		"candidate_name", "application_id", "tailored_questions",
	}).
		AddRow("b-2", now, "iv-1", "ada@example.com", "Ada Lovelace", int64(3),
			[]byte(`[{"question":"Q1"}]`)).
		AddRow("b-1", now.Add(-time.Hour), "iv-1", "ada@example.com", "Ada Lovelace", nil,
			[]byte(`[{"question":"Q2"}]`))

	mock.ExpectQuery("SELECT (.+) FROM interview_candidates").
		WithArgs("iv-1", "ada@example.com").
		WillReturnRows(rows)

	batches, err := repo.ListByScope(context.Background(), "iv-1", "ada@example.com")
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if batches[0].ID != "b-2" || batches[0].Questions[0].Question != "Q1" {
		t.Fatalf("newest batch wrong: %+v", batches[0])
	}
	if batches[1].ApplicationID != 0 {
		t.Fatalf("null application_id should decode to 0, got %d", batches[1].ApplicationID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
