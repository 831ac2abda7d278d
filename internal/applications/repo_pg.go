package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, created_at, full_name, email, phone, job_position, interview_id, cover_letter, resume_url, parsed_resume, analyzed_resume, resume_score, status`

// Create inserts an application and returns its generated id.
func (r *PGRepo) Create(ctx context.Context, app Application) (int64, error) {
	profile, err := json.Marshal(app.AnalyzedResume)
	if err != nil {
		return 0, fmt.Errorf("marshal analyzed resume: %w", err)
	}

	const query = `
INSERT INTO applications (
    full_name, email, phone, job_position, interview_id, cover_letter,
    resume_url, parsed_resume, analyzed_resume, resume_score, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	status := app.Status
	if status == "" {
		status = StatusNew
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, query,
		app.FullName,
		app.Email,
		app.Phone,
		app.JobPosition,
		app.InterviewID,
		app.CoverLetter,
		app.ResumeURL,
		app.ParsedResume,
		profile,
		app.ResumeScore,
		status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns one application by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// LatestByEmail returns the newest application for the email.
func (r *PGRepo) LatestByEmail(ctx context.Context, email string) (Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE email = $1 ORDER BY created_at DESC, id DESC LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// List returns all applications, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// UpdateStatus moves the application to a new ATS stage.
func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE applications SET status = $2 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row *sql.Row) (Application, error) {
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var profile []byte
	err := row.Scan(
		&app.ID,
		&app.CreatedAt,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.JobPosition,
		&app.InterviewID,
		&app.CoverLetter,
		&app.ResumeURL,
		&app.ParsedResume,
		&profile,
		&app.ResumeScore,
		&app.Status,
	)
	if err != nil {
		return Application{}, err
	}
	if len(profile) > 0 {
		// Stored profiles were validated on write; a malformed row should
		// not make the whole record unreadable.
		_ = json.Unmarshal(profile, &app.AnalyzedResume)
	}
	return app, nil
}

var _ Repo = (*PGRepo)(nil)
