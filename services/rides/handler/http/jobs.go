package http

import (
	"net/http"
	"strconv"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JobsHandler handles HTTP requests for background job operations
type JobsHandler struct {
	rideUC rides.RideUC
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(rideUC rides.RideUC) *JobsHandler {
	return &JobsHandler{
		rideUC: rideUC,
	}
}

// ProcessJob triggers one maintenance sweep. The scheduler calling this
// endpoint authenticates with the jobs API key, not a user identity.
func (h *JobsHandler) ProcessJob(c echo.Context) error {
	var req models.JobRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.rideUC.ProcessJob(c.Request().Context(), req.JobType)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job completed successfully", result)
}

// GetJob retrieves one job ledger entry
func (h *JobsHandler) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid job ID")
	}

	job, err := h.rideUC.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved successfully", job)
}

// ListJobs returns recent job ledger entries
func (h *JobsHandler) ListJobs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	jobs, err := h.rideUC.ListJobs(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Jobs retrieved successfully", jobs)
}
