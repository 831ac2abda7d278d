package interviewers

import (
	"errors"
	"time"
)

// ErrNotFound signals a missing interviewer record.
var ErrNotFound = errors.New("interviewer not found")

// Interviewer maps a named interviewer persona to its external voice-agent
// identity. The persona settings are 0-10 dials applied when the agent is
// provisioned.
type Interviewer struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	AgentID     string    `json:"agent_id"`
	VoiceID     string    `json:"voice_id"`
	Description string    `json:"description"`
	Empathy     int       `json:"empathy"`
	Rapport     int       `json:"rapport"`
	Exploration int       `json:"exploration"`
	Speed       int       `json:"speed"`
}
