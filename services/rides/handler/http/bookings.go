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

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	rideUC rides.RideUC
}

// NewBookingsHandler creates a new bookings handler
func NewBookingsHandler(rideUC rides.RideUC) *BookingsHandler {
	return &BookingsHandler{
		rideUC: rideUC,
	}
}

// CreateBooking handles booking creation requests
func (h *BookingsHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for booking creation",
			logger.ErrorField(err),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RideID == uuid.Nil || req.RiderID == uuid.Nil {
		return utils.BadRequestResponse(c, "ride_id and rider_id are required")
	}

	booking, err := h.rideUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking handles booking retrieval requests
func (h *BookingsHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.rideUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// ApproveBooking handles driver approval of a pending booking
func (h *BookingsHandler) ApproveBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.rideUC.ApproveBooking(c.Request().Context(), bookingID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking approved successfully", nil)
}

// RejectBooking handles driver rejection of a pending booking
func (h *BookingsHandler) RejectBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.rideUC.RejectBooking(c.Request().Context(), bookingID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking rejected successfully", nil)
}

// CancelBooking handles rider cancellation of a booking
func (h *BookingsHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.rideUC.CancelBooking(c.Request().Context(), bookingID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", nil)
}

// RecordPayment handles a payment confirmation against a booking
func (h *BookingsHandler) RecordPayment(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PaymentIntentID == "" {
		return utils.BadRequestResponse(c, "payment_intent_id is required")
	}

	booking, err := h.rideUC.RecordPayment(c.Request().Context(), bookingID, req.PaymentIntentID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment recorded successfully", booking)
}
