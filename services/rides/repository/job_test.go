package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/rides/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateJob_OpensRunningRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO background_jobs")).
		WithArgs(sqlmock.AnyArg(), models.JobTypeExpireRides, models.JobStatusRunning, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	job, err := repo.CreateJob(context.Background(), models.JobTypeExpireRides)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, models.JobStatusRunning, job.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteJob_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	jobID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE background_jobs")).
		WithArgs(jobID, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CompleteJob(context.Background(), jobID, 4)
	assert.NoError(t, err)
}

func TestFailJob_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	jobID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE background_jobs")).
		WithArgs(jobID, "sweep failed: connection reset").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.FailJob(context.Background(), jobID, "sweep failed: connection reset")
	assert.NoError(t, err)
}

func TestGetJob_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	jobID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(jobID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetJob(context.Background(), jobID)
	assert.ErrorIs(t, err, rides.ErrJobNotFound)
}

func TestListJobs_ReturnsRecent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "job_type", "status", "affected_rows", "error_message",
		"started_at", "completed_at", "created_at",
	}).
		AddRow(uuid.New().String(), "expire_rides", "completed", 3, nil, now, now, now).
		AddRow(uuid.New().String(), "complete_rides", "running", 0, nil, now, nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(20).
		WillReturnRows(rows)

	jobs, err := repo.ListJobs(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, models.JobTypeExpireRides, jobs[0].JobType)
	assert.Equal(t, models.JobStatusRunning, jobs[1].Status)
}

func TestRefreshRatingSummaries_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db, nil)

	mock.ExpectExec(regexp.QuoteMeta("REFRESH MATERIALIZED VIEW CONCURRENTLY user_rating_summary")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users u")).
		WillReturnResult(sqlmock.NewResult(0, 12))

	err := repo.RefreshRatingSummaries(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
