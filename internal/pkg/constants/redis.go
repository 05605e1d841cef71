package constants

// Redis key patterns
const (
	// KeyJobLock is the job-slot claim for a sweep run, keyed by job type.
	// Format: jobs:lock:{job_type}
	KeyJobLock = "jobs:lock:%s"
)
