package http

import (
	"net/http"
	"testing"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/rides/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobsHandler_ProcessJob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewJobsHandler(mockUC)

	result := &models.JobResult{
		JobID:        uuid.New(),
		JobType:      models.JobTypeExpireRides,
		AffectedRows: 3,
	}
	mockUC.EXPECT().ProcessJob(gomock.Any(), models.JobTypeExpireRides).Return(result, nil)

	c, recorder := newJSONContext(t, http.MethodPost, models.JobRequest{JobType: models.JobTypeExpireRides})
	assert.NoError(t, handler.ProcessJob(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestJobsHandler_ProcessJob_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewJobsHandler(mockUC)

	mockUC.EXPECT().ProcessJob(gomock.Any(), models.JobType("bogus")).
		Return(nil, rides.ErrInvalidJobType)

	c, recorder := newJSONContext(t, http.MethodPost, models.JobRequest{JobType: "bogus"})
	assert.NoError(t, handler.ProcessJob(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestJobsHandler_ProcessJob_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewJobsHandler(mockUC)

	mockUC.EXPECT().ProcessJob(gomock.Any(), models.JobTypeCompleteRides).
		Return(nil, rides.ErrJobAlreadyRunning)

	c, recorder := newJSONContext(t, http.MethodPost, models.JobRequest{JobType: models.JobTypeCompleteRides})
	assert.NoError(t, handler.ProcessJob(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestJobsHandler_GetJob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewJobsHandler(mockUC)

	jobID := uuid.New()
	mockUC.EXPECT().GetJob(gomock.Any(), jobID).Return(nil, rides.ErrJobNotFound)

	c, recorder := newJSONContext(t, http.MethodGet, nil)
	c.SetParamNames("jobID")
	c.SetParamValues(jobID.String())

	assert.NoError(t, handler.GetJob(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestJobsHandler_ListJobs_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewJobsHandler(mockUC)

	mockUC.EXPECT().ListJobs(gomock.Any(), 0).Return([]*models.BackgroundJob{}, nil)

	c, recorder := newJSONContext(t, http.MethodGet, nil)
	assert.NoError(t, handler.ListJobs(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
