package interviews

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an interview template.
func (r *PGRepo) Create(ctx context.Context, interview Interview) error {
	const query = `
INSERT INTO interviews (id, name, objective, jd, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		interview.ID,
		interview.Name,
		interview.Objective,
		interview.JD,
		interview.CreatedAt,
	)
	return err
}

// GetByID returns one interview by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Interview, error) {
	const query = `
SELECT id, name, objective, jd, created_at
FROM interviews
WHERE id = $1
LIMIT 1`
	var interview Interview
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&interview.ID,
		&interview.Name,
		&interview.Objective,
		&interview.JD,
		&interview.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Interview{}, ErrNotFound
		}
		return Interview{}, err
	}
	return interview, nil
}

// List returns all interviews, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Interview, error) {
	const query = `
SELECT id, name, objective, jd, created_at
FROM interviews
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interview
	for rows.Next() {
		var interview Interview
		if err := rows.Scan(
			&interview.ID,
			&interview.Name,
			&interview.Objective,
			&interview.JD,
			&interview.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, interview)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
