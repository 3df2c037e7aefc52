package domain

import "time"

// ApplicationStatus tracks an application through the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "Pending"
	ApplicationUnderReview ApplicationStatus = "Under Review"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationInterview   ApplicationStatus = "Interview Scheduled"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationHired       ApplicationStatus = "Hired"
)

// ParseApplicationStatus validates a raw status value.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(raw) {
	case ApplicationPending, ApplicationUnderReview, ApplicationShortlisted,
		ApplicationInterview, ApplicationRejected, ApplicationHired:
		return ApplicationStatus(raw), true
	}
	return "", false
}

// Application records a candidate applying to a job. The (JobID, ApplicantID)
// pair is unique: a candidate applies to a given job at most once.
type Application struct {
	ID          int64
	JobID       int64
	ApplicantID int64
	FullName    string
	Email       string
	Phone       string
	Education   string
	Experience  string
	Skills      string
	ResumeURL   string
	CoverLetter string
	Status      ApplicationStatus
	AppliedAt   time.Time
	UpdatedAt   time.Time

	// Populated on reads that join related rows.
	Applicant *PublicView
	Job       *Job
}

// ApplicationStats aggregates an employer's application counts by status.
type ApplicationStats struct {
	Total       int64 `json:"totalApplications"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"underReview"`
	Shortlisted int64 `json:"shortlisted"`
	Interviewed int64 `json:"interviewed"`
}
