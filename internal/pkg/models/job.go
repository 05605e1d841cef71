package models

import (
	"time"

	"github.com/google/uuid"
)

// JobType identifies a background maintenance job
type JobType string

const (
	JobTypeExpireRides    JobType = "expire_rides"
	JobTypeCompleteRides  JobType = "complete_rides"
	JobTypeRefreshRatings JobType = "refresh_ratings"
)

// Valid reports whether the job type is one the sweeper knows how to run.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeExpireRides, JobTypeCompleteRides, JobTypeRefreshRatings:
		return true
	}
	return false
}

// JobStatus represents the execution state of a background job
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// BackgroundJob is one entry in the append-only sweep execution log.
// A row is opened before the sweep runs and closed after, success or
// failure, so failures stay observable past the scheduling boundary.
type BackgroundJob struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	JobType      JobType    `json:"job_type" db:"job_type"`
	Status       JobStatus  `json:"status" db:"status"`
	StartedAt    time.Time  `json:"started_at" db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	AffectedRows int        `json:"affected_rows" db:"affected_rows"`
	ErrorMessage *string    `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// JobRequest is the payload for triggering a background job
type JobRequest struct {
	JobType JobType `json:"job_type"`
}

// JobResult summarizes one sweep invocation
type JobResult struct {
	JobID        uuid.UUID `json:"job_id"`
	JobType      JobType   `json:"job_type"`
	AffectedRows int       `json:"affected_rows"`
}
