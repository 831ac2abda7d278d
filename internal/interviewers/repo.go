package interviewers

import "context"

// Repo defines persistence operations for interviewers.
type Repo interface {
	Create(ctx context.Context, interviewer Interviewer) error
	GetByID(ctx context.Context, id string) (Interviewer, error)
	List(ctx context.Context) ([]Interviewer, error)
}
