package domain

import "time"

// JobType enumerates employment kinds for a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

// ParseJobType validates a raw job type value.
func ParseJobType(raw string) (JobType, bool) {
	switch JobType(raw) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return JobType(raw), true
	}
	return "", false
}

// ExperienceLevel enumerates seniority bands for a posting.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry Level"
	ExperienceMid       ExperienceLevel = "Mid Level"
	ExperienceSenior    ExperienceLevel = "Senior Level"
	ExperienceExecutive ExperienceLevel = "Executive"
)

// ParseExperienceLevel validates a raw experience level value.
func ParseExperienceLevel(raw string) (ExperienceLevel, bool) {
	switch ExperienceLevel(raw) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return ExperienceLevel(raw), true
	}
	return "", false
}

// Job is a posting created by an employer. CreatedBy is the owning user id
// against which ownership gates compare.
type Job struct {
	ID               int64
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Company          string
	CompanyLogo      string
	Location         string
	Salary           string
	SalaryMin        *int
	SalaryMax        *int
	JobType          JobType
	Industry         string
	ExperienceLevel  ExperienceLevel
	Deadline         *time.Time
	IsActive         bool
	IsFeatured       bool
	Views            int64
	CreatedBy        int64
	PostedAt         time.Time
	UpdatedAt        time.Time

	// Creator is populated on reads that join the owning user.
	Creator *CreatorSummary
}

// CreatorSummary is the slice of the owning user embedded in job responses.
type CreatorSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CompanyName    string `json:"companyName,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`
}
