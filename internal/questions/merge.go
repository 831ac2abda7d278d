package questions

import (
	"context"
	"strings"
)

// Merge flattens historical batches into one ordered question list and
// appends the caller's ad-hoc questions.
//
// Batches are expected newest-first; flattening preserves batch order and
// intra-batch order. Duplicates are detected by trimmed, case-sensitive
// text with first-seen-wins, so a question repeated across regenerated
// batches keeps the position of its newest occurrence. Ad-hoc questions are
// appended verbatim and are not deduplicated against the historical set.
// An empty result is valid.
func Merge(batches []Batch, adhoc []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, batch := range batches {
		for _, q := range batch.Questions {
			trimmed := strings.TrimSpace(q.Question)
			if trimmed == "" {
				continue
			}
			if _, ok := seen[trimmed]; ok {
				continue
			}
			seen[trimmed] = struct{}{}
			out = append(out, trimmed)
		}
	}
	return append(out, adhoc...)
}

// MergeForScope fetches every batch for (interview id, candidate email) and
// merges it with the ad-hoc questions. The result is a pure function of the
// stored batches and the ad-hoc list.
func (s *Service) MergeForScope(ctx context.Context, interviewID, candidateEmail string, adhoc []string) ([]string, error) {
	batches, err := s.Repo.ListByScope(ctx, interviewID, candidateEmail)
	if err != nil {
		return nil, err
	}
	return Merge(batches, adhoc), nil
}
