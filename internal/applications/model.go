package applications

import "time"

// ATS pipeline stages for an application. The stage is managed by the
// dashboard after submission; everything else on the record is immutable.
const (
	StatusNew       = "new"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
)

// ValidStatus reports whether s names a known ATS stage.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusScreening, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Application is one candidate submission to one interview.
type Application struct {
	ID             int64
	CreatedAt      time.Time
	FullName       string
	Email          string
	Phone          string
	JobPosition    string
	InterviewID    string
	CoverLetter    string
	ResumeURL      string
	ParsedResume   string
	AnalyzedResume ResumeProfile
	ResumeScore    int
	Status         string
}

// ResumeProfile is the structured shape extracted from a resume by the LLM.
// A zero value is a valid profile; enrichment is best-effort.
type ResumeProfile struct {
	Skills         []string          `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Summary        string            `json:"summary,omitempty"`
}

// ExperienceEntry is one role in the candidate's work history.
type ExperienceEntry struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Details []string `json:"details,omitempty"`
}

// ProjectEntry is one project extracted from the resume.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
}

// EducationEntry is one education record extracted from the resume.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}
