package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	// Create inserts the application and returns its generated id.
	Create(ctx context.Context, app Application) (int64, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	// LatestByEmail returns the most recent application for the email,
	// ordered by creation time.
	LatestByEmail(ctx context.Context, email string) (Application, error)
	// List returns all applications, newest first.
	List(ctx context.Context) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
