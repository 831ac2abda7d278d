package applications

import "time"

// ApplicationResponse is the wire shape of one application record.
type ApplicationResponse struct {
	ID             int64         `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	FullName       string        `json:"full_name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	JobPosition    string        `json:"job_position"`
	InterviewID    string        `json:"interview_id"`
	CoverLetter    string        `json:"cover_letter"`
	ResumeURL      string        `json:"resume_url"`
	ParsedResume   string        `json:"parsed_resume"`
	AnalyzedResume ResumeProfile `json:"analyzed_resume"`
	ResumeScore    int           `json:"resume_score"`
	Status         string        `json:"status"`
}

func toApplicationResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             app.ID,
		CreatedAt:      app.CreatedAt,
		FullName:       app.FullName,
		Email:          app.Email,
		Phone:          app.Phone,
		JobPosition:    app.JobPosition,
		InterviewID:    app.InterviewID,
		CoverLetter:    app.CoverLetter,
		ResumeURL:      app.ResumeURL,
		ParsedResume:   app.ParsedResume,
		AnalyzedResume: app.AnalyzedResume,
		ResumeScore:    app.ResumeScore,
		Status:         app.Status,
	}
}
