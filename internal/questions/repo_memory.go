package questions

import (
	"context"
	"sort"
	"sync"
)

type scopeKey struct {
	interviewID string
	email       string
}

// MemoryRepo stores batches in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	byScope map[scopeKey][]Batch
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byScope: make(map[scopeKey][]Batch)}
}

// Create stores the batch.
func (r *MemoryRepo) Create(ctx context.Context, batch Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := scopeKey{interviewID: batch.InterviewID, email: batch.CandidateEmail}
	r.byScope[key] = append(r.byScope[key], batch)
	return nil
}

// ListByScope returns the scope's batches, newest first.
func (r *MemoryRepo) ListByScope(ctx context.Context, interviewID, candidateEmail string) ([]Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := r.byScope[scopeKey{interviewID: interviewID, email: candidateEmail}]
	r.mu.RUnlock()

	out := make([]Batch, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
