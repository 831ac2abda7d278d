package interviews

import "context"

// Repo defines persistence operations for interview templates.
type Repo interface {
	Create(ctx context.Context, interview Interview) error
	GetByID(ctx context.Context, id string) (Interview, error)
	// List returns all interviews, newest first.
	List(ctx context.Context) ([]Interview, error)
}
