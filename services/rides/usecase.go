package rides

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/google/uuid"
)

// RideUC defines the business logic for the ride capacity and booking
// lifecycle engine.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/campuspool/campuspool/services/rides RideUC
type RideUC interface {
	// Ride lifecycle
	CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, driverID uuid.UUID) (int, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)

	// Booking lifecycle
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, bookingID uuid.UUID) error
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	RecordPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) (*models.Booking, error)
	ValidateBookingRequest(ctx context.Context, rideID uuid.UUID, seatsRequested int) (*models.BookingValidation, error)

	// Background jobs
	ProcessJob(ctx context.Context, jobType models.JobType) (*models.JobResult, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.BackgroundJob, error)
	ListJobs(ctx context.Context, limit int) ([]*models.BackgroundJob, error)
}
