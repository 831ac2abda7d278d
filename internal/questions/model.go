package questions

import "time"

// Question holds exactly one non-empty trimmed question string.
type Question struct {
	Question string `json:"question"`
}

// Batch is one tailored-question generation event, scoped to
// (interview id, candidate email). The scope key is not unique: regenerated
// invites produce additional batches, and the merge step reconciles them at
// call time. Batches are immutable once written.
type Batch struct {
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	InterviewID    string     `json:"interview_id"`
	CandidateEmail string     `json:"candidate_email"`
	CandidateName  string     `json:"candidate_name"`
	ApplicationID  int64      `json:"application_id"`
	Questions      []Question `json:"tailored_questions"`
}
