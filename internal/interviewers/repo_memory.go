package interviewers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores interviewers in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Interviewer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Interviewer)}
}

// Create stores the interviewer.
func (r *MemoryRepo) Create(ctx context.Context, interviewer Interviewer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[interviewer.ID] = interviewer
	return nil
}

// GetByID returns one interviewer by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Interviewer, error) {
	if err := ctx.Err(); err != nil {
		return Interviewer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	interviewer, ok := r.byID[id]
	if !ok {
		return Interviewer{}, ErrNotFound
	}
	return interviewer, nil
}

// List returns all interviewers ordered by creation time.
func (r *MemoryRepo) List(ctx context.Context) ([]Interviewer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Interviewer, 0, len(r.byID))
	for _, interviewer := range r.byID {
		out = append(out, interviewer)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
