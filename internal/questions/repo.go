package questions

import "context"

// Repo defines persistence operations for tailored-question batches.
type Repo interface {
	Create(ctx context.Context, batch Batch) error
	// ListByScope returns every batch for (interview id, candidate email),
	// newest first. Batches outside the scope must never leak in.
	ListByScope(ctx context.Context, interviewID, candidateEmail string) ([]Batch, error)
}
