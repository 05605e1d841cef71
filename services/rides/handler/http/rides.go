package http

import (
	"net/http"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new rides handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// CreateRide handles ride creation requests
func (h *RidesHandler) CreateRide(c echo.Context) error {
	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for ride creation",
			logger.ErrorField(err),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// GetRide handles ride retrieval requests
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// CancelRide handles ride cancellation by the driver
func (h *RidesHandler) CancelRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.RideCancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	cancelled, err := h.rideUC.CancelRide(c.Request().Context(), rideID, req.DriverID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", map[string]interface{}{
		"ride_id":            rideID,
		"bookings_cancelled": cancelled,
	})
}

// CompleteRide handles manual ride completion by the driver
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.RideCompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, req.DriverID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed successfully", ride)
}

// ValidateBooking handles dry-run capacity checks against a ride
func (h *RidesHandler) ValidateBooking(c echo.Context) error {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.ValidateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	validation, err := h.rideUC.ValidateBookingRequest(c.Request().Context(), rideID, req.SeatsRequested)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking validated", validation)
}
