package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobRequest payload for creating or replacing a posting.
type JobRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Company          string     `json:"company"`
	CompanyLogo      string     `json:"companyLogo"`
	Location         string     `json:"location"`
	Salary           string     `json:"salary"`
	SalaryMin        *int       `json:"salaryMin"`
	SalaryMax        *int       `json:"salaryMax"`
	JobType          string     `json:"jobType"`
	Industry         string     `json:"industry"`
	ExperienceLevel  string     `json:"experienceLevel"`
	Deadline         *time.Time `json:"deadline"`
	IsFeatured       bool       `json:"isFeatured"`
}

// JobResponse is the posting representation returned to clients.
type JobResponse struct {
	ID               int64                   `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Requirements     string                  `json:"requirements,omitempty"`
	Responsibilities string                  `json:"responsibilities,omitempty"`
	Company          string                  `json:"company"`
	CompanyLogo      string                  `json:"companyLogo,omitempty"`
	Location         string                  `json:"location"`
	Salary           string                  `json:"salary,omitempty"`
	SalaryMin        *int                    `json:"salaryMin,omitempty"`
	SalaryMax        *int                    `json:"salaryMax,omitempty"`
	JobType          domain.JobType          `json:"jobType"`
	Industry         string                  `json:"industry,omitempty"`
	ExperienceLevel  domain.ExperienceLevel  `json:"experienceLevel"`
	Deadline         *time.Time              `json:"deadline,omitempty"`
	IsActive         bool                    `json:"isActive"`
	IsFeatured       bool                    `json:"isFeatured"`
	Views            int64                   `json:"views"`
	CreatedBy        int64                   `json:"createdBy"`
	PostedAt         time.Time               `json:"postedAt"`
	Creator          *domain.CreatorSummary  `json:"creator,omitempty"`
}

// JobListResponse wraps a paginated job listing.
type JobListResponse struct {
	Jobs        []JobResponse `json:"jobs"`
	Total       int64         `json:"total"`
	Pages       int64         `json:"pages"`
	CurrentPage int           `json:"currentPage"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Company:          job.Company,
		CompanyLogo:      job.CompanyLogo,
		Location:         job.Location,
		Salary:           job.Salary,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		JobType:          job.JobType,
		Industry:         job.Industry,
		ExperienceLevel:  job.ExperienceLevel,
		Deadline:         job.Deadline,
		IsActive:         job.IsActive,
		IsFeatured:       job.IsFeatured,
		Views:            job.Views,
		CreatedBy:        job.CreatedBy,
		PostedAt:         job.PostedAt,
		Creator:          job.Creator,
	}
}
