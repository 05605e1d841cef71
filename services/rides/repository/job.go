package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/database"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// JobRepo provides data access to the background job ledger and the
// Redis job-slot locks
type JobRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewJobRepository creates a new job repository
func NewJobRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *JobRepo {
	return &JobRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

const jobColumns = `
	id, job_type, status, affected_rows, error_message,
	started_at, completed_at, created_at`

// CreateJob opens a ledger row in running state for a sweep about to run
func (r *JobRepo) CreateJob(ctx context.Context, jobType models.JobType) (*models.BackgroundJob, error) {
	job := &models.BackgroundJob{
		ID:        uuid.New(),
		JobType:   jobType,
		Status:    models.JobStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	job.CreatedAt = job.StartedAt

	query := `
		INSERT INTO background_jobs (id, job_type, status, started_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query, job.ID, job.JobType, job.Status, job.StartedAt, job.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert background job: %w", err)
	}

	return job, nil
}

// CompleteJob closes a ledger row with the sweep's affected row count
func (r *JobRepo) CompleteJob(ctx context.Context, jobID uuid.UUID, affectedRows int) error {
	query := `
		UPDATE background_jobs
		SET status = 'completed', affected_rows = $2, completed_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, jobID, affectedRows); err != nil {
		return fmt.Errorf("failed to complete background job: %w", err)
	}

	return nil
}

// FailJob closes a ledger row with the sweep's error message
func (r *JobRepo) FailJob(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	query := `
		UPDATE background_jobs
		SET status = 'failed', error_message = $2, completed_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, jobID, errorMessage); err != nil {
		return fmt.Errorf("failed to mark background job failed: %w", err)
	}

	return nil
}

// GetJob retrieves a ledger row by ID
func (r *JobRepo) GetJob(ctx context.Context, jobID uuid.UUID) (*models.BackgroundJob, error) {
	query := `SELECT` + jobColumns + `
	FROM background_jobs WHERE id = $1`

	var job models.BackgroundJob
	err := r.db.GetContext(ctx, &job, query, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get background job: %w", err)
	}

	return &job, nil
}

// ListJobs returns the most recent ledger rows
func (r *JobRepo) ListJobs(ctx context.Context, limit int) ([]*models.BackgroundJob, error) {
	query := `SELECT` + jobColumns + `
	FROM background_jobs ORDER BY created_at DESC LIMIT $1`

	jobs := []*models.BackgroundJob{}
	if err := r.db.SelectContext(ctx, &jobs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list background jobs: %w", err)
	}

	return jobs, nil
}

// AcquireJobLock claims the Redis job slot for a job type. The TTL bounds
// how long a crashed sweep can hold the slot.
func (r *JobRepo) AcquireJobLock(ctx context.Context, jobType models.JobType, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyJobLock, jobType)

	acquired, err := r.redis.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire job lock: %w", err)
	}

	return acquired, nil
}

// ReleaseJobLock frees the job slot after a sweep finishes
func (r *JobRepo) ReleaseJobLock(ctx context.Context, jobType models.JobType) error {
	key := fmt.Sprintf(constants.KeyJobLock, jobType)

	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release job lock: %w", err)
	}

	return nil
}

// RefreshRatingSummaries rebuilds the rating collaborator's materialized
// summary and syncs the denormalized columns on users
func (r *JobRepo) RefreshRatingSummaries(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `REFRESH MATERIALIZED VIEW CONCURRENTLY user_rating_summary`); err != nil {
		return fmt.Errorf("failed to refresh rating summary view: %w", err)
	}

	query := `
		UPDATE users u
		SET rating_avg = s.rating_avg, rating_count = s.rating_count
		FROM user_rating_summary s
		WHERE u.id = s.user_id
		  AND (u.rating_avg IS DISTINCT FROM s.rating_avg
		    OR u.rating_count IS DISTINCT FROM s.rating_count)
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to sync user rating columns: %w", err)
	}

	return nil
}
