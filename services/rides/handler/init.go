package handler

import (
	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	httpHandler "github.com/campuspool/campuspool/services/rides/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP    *httpHandler.RidesHandler
	bookingsHTTP *httpHandler.BookingsHandler
	jobsHTTP     *httpHandler.JobsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP:    httpHandler.NewRidesHandler(rideUC),
		bookingsHTTP: httpHandler.NewBookingsHandler(rideUC),
		jobsHTTP:     httpHandler.NewJobsHandler(rideUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	ridesGroup := e.Group("/rides")
	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.PUT("/:rideID/cancel", h.ridesHTTP.CancelRide)
	ridesGroup.PUT("/:rideID/complete", h.ridesHTTP.CompleteRide)
	ridesGroup.POST("/:rideID/validate-booking", h.ridesHTTP.ValidateBooking)

	bookingsGroup := e.Group("/bookings")
	bookingsGroup.POST("", h.bookingsHTTP.CreateBooking)
	bookingsGroup.GET("/:bookingID", h.bookingsHTTP.GetBooking)
	bookingsGroup.PUT("/:bookingID/approve", h.bookingsHTTP.ApproveBooking)
	bookingsGroup.PUT("/:bookingID/reject", h.bookingsHTTP.RejectBooking)
	bookingsGroup.PUT("/:bookingID/cancel", h.bookingsHTTP.CancelBooking)
	bookingsGroup.PUT("/:bookingID/payment", h.bookingsHTTP.RecordPayment)

	// Scheduler-facing endpoints, API key required
	jobsGroup := e.Group("/jobs", apiKey.JobsHandler())
	jobsGroup.POST("/process-rides", h.jobsHTTP.ProcessJob)
	jobsGroup.GET("/process-rides", h.jobsHTTP.ListJobs)
	jobsGroup.GET("/process-rides/:jobID", h.jobsHTTP.GetJob)
}
