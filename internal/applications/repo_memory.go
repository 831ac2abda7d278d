package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores applications in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]Application),
	}
}

// Create stores the application and returns its assigned id.
func (r *MemoryRepo) Create(ctx context.Context, app Application) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	app.ID = r.nextID
	r.nextID++
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	if app.Status == "" {
		app.Status = StatusNew
	}
	r.byID[app.ID] = app
	return app.ID, nil
}

// GetByID returns one application by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

// LatestByEmail returns the newest application for the email.
func (r *MemoryRepo) LatestByEmail(ctx context.Context, email string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest Application
	found := false
	for _, app := range r.byID {
		if app.Email != email {
			continue
		}
		if !found || app.CreatedAt.After(latest.CreatedAt) ||
			(app.CreatedAt.Equal(latest.CreatedAt) && app.ID > latest.ID) {
			latest = app
			found = true
		}
	}
	if !found {
		return Application{}, ErrNotFound
	}
	return latest, nil
}

// List returns all applications, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Application, 0, len(r.byID))
	for _, app := range r.byID {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus moves the application to a new ATS stage.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	app.Status = status
	r.byID[id] = app
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
