package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationRequest payload for submitting an application.
type ApplicationRequest struct {
	JobID       int64  `json:"jobId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Education   string `json:"education"`
	Experience  string `json:"experience"`
	Skills      string `json:"skills"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

// UpdateStatusRequest payload for moving an application through the pipeline.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationResponse is the application representation returned to clients.
type ApplicationResponse struct {
	ID          int64                    `json:"id"`
	JobID       int64                    `json:"jobId"`
	ApplicantID int64                    `json:"applicantId"`
	FullName    string                   `json:"fullName"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	Education   string                   `json:"education,omitempty"`
	Experience  string                   `json:"experience,omitempty"`
	Skills      string                   `json:"skills,omitempty"`
	ResumeURL   string                   `json:"resumeUrl,omitempty"`
	CoverLetter string                   `json:"coverLetter,omitempty"`
	Status      domain.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"appliedAt"`
	Job         *JobResponse             `json:"job,omitempty"`
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(app *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		Education:   app.Education,
		Experience:  app.Experience,
		Skills:      app.Skills,
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt,
	}
	if app.Job != nil {
		job := NewJobResponse(app.Job)
		resp.Job = &job
	}
	return resp
}
