package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores interviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Interview
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Interview)}
}

// Create stores the interview.
func (r *MemoryRepo) Create(ctx context.Context, interview Interview) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[interview.ID] = interview
	return nil
}

// GetByID returns one interview by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	interview, ok := r.byID[id]
	if !ok {
		return Interview{}, ErrNotFound
	}
	return interview, nil
}

// List returns all interviews, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Interview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Interview, 0, len(r.byID))
	for _, interview := range r.byID {
		out = append(out, interview)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
