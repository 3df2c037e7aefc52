package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// SaveJobRequest payload for bookmarking a job.
type SaveJobRequest struct {
	JobID int64 `json:"jobId"`
}

// SavedJobResponse is the bookmark representation returned to clients.
type SavedJobResponse struct {
	ID      int64        `json:"id"`
	UserID  int64        `json:"userId"`
	JobID   int64        `json:"jobId"`
	SavedAt time.Time    `json:"savedAt"`
	Job     *JobResponse `json:"job,omitempty"`
}

// SavedCheckResponse answers the "is this job saved" probe.
type SavedCheckResponse struct {
	IsSaved    bool   `json:"isSaved"`
	SavedJobID *int64 `json:"savedJobId,omitempty"`
}

// NewSavedJobResponse maps a domain saved job.
func NewSavedJobResponse(saved *domain.SavedJob) SavedJobResponse {
	resp := SavedJobResponse{
		ID:      saved.ID,
		UserID:  saved.UserID,
		JobID:   saved.JobID,
		SavedAt: saved.SavedAt,
	}
	if saved.Job != nil {
		job := NewJobResponse(saved.Job)
		resp.Job = &job
	}
	return resp
}
