package domain

import "time"

// SavedJob bookmarks a job for a user. The (UserID, JobID) pair is unique.
type SavedJob struct {
	ID      int64
	UserID  int64
	JobID   int64
	SavedAt time.Time

	// Job is populated on reads that join the posting.
	Job *Job
}
