package interviewers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an interviewer.
func (r *PGRepo) Create(ctx context.Context, interviewer Interviewer) error {
	const query = `
INSERT INTO interviewers (id, created_at, name, agent_id, voice_id, description, empathy, rapport, exploration, speed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		interviewer.ID,
		interviewer.CreatedAt,
		interviewer.Name,
		interviewer.AgentID,
		interviewer.VoiceID,
		interviewer.Description,
		interviewer.Empathy,
		interviewer.Rapport,
		interviewer.Exploration,
		interviewer.Speed,
	)
	return err
}

// GetByID returns one interviewer by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Interviewer, error) {
	const query = `
SELECT id, created_at, name, agent_id, voice_id, description, empathy, rapport, exploration, speed
FROM interviewers
WHERE id = $1
LIMIT 1`
	var interviewer Interviewer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&interviewer.ID,
		&interviewer.CreatedAt,
		&interviewer.Name,
		&interviewer.AgentID,
		&interviewer.VoiceID,
		&interviewer.Description,
		&interviewer.Empathy,
		&interviewer.Rapport,
		&interviewer.Exploration,
		&interviewer.Speed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Interviewer{}, ErrNotFound
		}
		return Interviewer{}, err
	}
	return interviewer, nil
}

// List returns all interviewers.
func (r *PGRepo) List(ctx context.Context) ([]Interviewer, error) {
	const query = `
SELECT id, created_at, name, agent_id, voice_id, description, empathy, rapport, exploration, speed
FROM interviewers
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interviewer
	for rows.Next() {
		var interviewer Interviewer
		if err := rows.Scan(
			&interviewer.ID,
			&interviewer.CreatedAt,
			&interviewer.Name,
			&interviewer.AgentID,
			&interviewer.VoiceID,
			&interviewer.Description,
			&interviewer.Empathy,
			&interviewer.Rapport,
			&interviewer.Exploration,
			&interviewer.Speed,
		); err != nil {
			return nil, err
		}
		out = append(out, interviewer)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
