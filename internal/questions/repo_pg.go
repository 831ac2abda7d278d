package questions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres. Question payloads live in a JSONB
// column as an ordered [{question}] array.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a batch.
func (r *PGRepo) Create(ctx context.Context, batch Batch) error {
	payload, err := json.Marshal(batch.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	const query = `
INSERT INTO interview_candidates (
    id, created_at, interview_id, candidate_email, candidate_name,
    application_id, tailored_questions
) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	appID := sql.NullInt64{Int64: batch.ApplicationID, Valid: batch.ApplicationID != 0}
	_, err = r.DB.ExecContext(ctx, query,
		batch.ID,
		batch.CreatedAt,
		batch.InterviewID,
		batch.CandidateEmail,
		batch.CandidateName,
		appID,
		payload,
	)
	return err
}

// ListByScope returns every batch for the scope, newest first.
func (r *PGRepo) ListByScope(ctx context.Context, interviewID, candidateEmail string) ([]Batch, error) {
	const query = `
SELECT id, created_at, interview_id, candidate_email, candidate_name, application_id, tailored_questions
FROM interview_candidates
WHERE interview_id = $1 AND candidate_email = $2
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, interviewID, candidateEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var batch Batch
		var payload []byte
		var appID sql.NullInt64
		if err := rows.Scan(
			&batch.ID,
			&batch.CreatedAt,
			&batch.InterviewID,
			&batch.CandidateEmail,
			&batch.CandidateName,
			&appID,
			&payload,
		); err != nil {
			return nil, err
		}
		batch.ApplicationID = appID.Int64
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &batch.Questions); err != nil {
				return nil, fmt.Errorf("unmarshal questions batch=%s: %w", batch.ID, err)
			}
		}
		out = append(out, batch)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
