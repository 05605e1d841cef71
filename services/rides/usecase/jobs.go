package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
)

const (
	defaultJobListLimit = 20
	maxJobListLimit     = 100
)

// ProcessJob runs one maintenance sweep under the job-slot lock and logs
// it in the job ledger. Only one sweep of a given type runs at a time;
// a second trigger while the slot is held gets ErrJobAlreadyRunning.
func (uc *rideUC) ProcessJob(ctx context.Context, jobType models.JobType) (*models.JobResult, error) {
	if !jobType.Valid() {
		return nil, fmt.Errorf("unknown job type %q: %w", jobType, rides.ErrInvalidJobType)
	}

	ttl := time.Duration(uc.cfg.Rides.JobLockTTLSeconds) * time.Second
	acquired, err := uc.jobRepo.AcquireJobLock(ctx, jobType, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, rides.ErrJobAlreadyRunning
	}
	defer func() {
		if err := uc.jobRepo.ReleaseJobLock(ctx, jobType); err != nil {
			logger.Warn("Failed to release job lock",
				logger.ErrorField(err),
				logger.String("job_type", string(jobType)),
			)
		}
	}()

	job, err := uc.jobRepo.CreateJob(ctx, jobType)
	if err != nil {
		return nil, err
	}

	logger.Info("Background job started",
		logger.String("job_id", job.ID.String()),
		logger.String("job_type", string(jobType)),
	)

	affected, err := uc.runSweep(ctx, jobType)
	if err != nil {
		logger.Error("Background job failed",
			logger.ErrorField(err),
			logger.String("job_id", job.ID.String()),
			logger.String("job_type", string(jobType)),
		)
		if failErr := uc.jobRepo.FailJob(ctx, job.ID, err.Error()); failErr != nil {
			logger.Error("Failed to record job failure",
				logger.ErrorField(failErr),
				logger.String("job_id", job.ID.String()),
			)
		}
		return nil, err
	}

	if err := uc.jobRepo.CompleteJob(ctx, job.ID, affected); err != nil {
		return nil, err
	}

	logger.Info("Background job completed",
		logger.String("job_id", job.ID.String()),
		logger.String("job_type", string(jobType)),
		logger.Int("affected_rows", affected),
	)

	return &models.JobResult{
		JobID:        job.ID,
		JobType:      jobType,
		AffectedRows: affected,
	}, nil
}

// runSweep dispatches to the sweep behind a job type. The expiry and
// auto-completion sweeps share one cutoff and partition the stale rides
// between them: no paid booking means expire, at least one means complete.
func (uc *rideUC) runSweep(ctx context.Context, jobType models.JobType) (int, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-time.Duration(uc.cfg.Rides.StaleAfterHours) * time.Hour)

	switch jobType {
	case models.JobTypeExpireRides:
		return uc.rideRepo.ExpireStaleRides(ctx, cutoff)
	case models.JobTypeCompleteRides:
		return uc.rideRepo.AutoCompleteStaleRides(ctx, cutoff, now)
	case models.JobTypeRefreshRatings:
		if err := uc.jobRepo.RefreshRatingSummaries(ctx); err != nil {
			return 0, err
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown job type %q: %w", jobType, rides.ErrInvalidJobType)
	}
}

// GetJob retrieves a job ledger entry by ID
func (uc *rideUC) GetJob(ctx context.Context, jobID uuid.UUID) (*models.BackgroundJob, error) {
	return uc.jobRepo.GetJob(ctx, jobID)
}

// ListJobs returns the most recent job ledger entries
func (uc *rideUC) ListJobs(ctx context.Context, limit int) ([]*models.BackgroundJob, error) {
	if limit <= 0 {
		limit = defaultJobListLimit
	}
	if limit > maxJobListLimit {
		limit = maxJobListLimit
	}
	return uc.jobRepo.ListJobs(ctx, limit)
}
