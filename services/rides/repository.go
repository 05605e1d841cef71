package rides

import (
	"context"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/google/uuid"
)

// RideRepo defines data access for the ride capacity ledger.
//
//go:generate mockgen -destination=mocks/mock_ride_repo.go -package=mocks github.com/campuspool/campuspool/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// SetSeatsAndStatus writes the recalculated availability for a ride.
	// Only the availability recalculation may call it; there is no
	// incremental seat arithmetic anywhere else.
	SetSeatsAndStatus(ctx context.Context, rideID uuid.UUID, seatsAvailable int, status models.RideStatus) error

	// ConfirmedSeats returns the seat sum over the ride's paid and
	// completed bookings, the only bookings that consume capacity.
	ConfirmedSeats(ctx context.Context, rideID uuid.UUID) (int, error)

	// CancelRideCascade marks the ride cancelled and cascades cancellation
	// to its active (pending, paid) bookings in one transaction. Returns
	// the number of bookings cancelled.
	CancelRideCascade(ctx context.Context, rideID uuid.UUID) (int, error)

	// CompleteRideCascade marks the ride completed and cascades completion
	// to its paid bookings in one transaction. Returns the number of
	// bookings completed.
	CompleteRideCascade(ctx context.Context, rideID uuid.UUID, completedAt time.Time, autoCompleted bool) (int, error)

	// ExpireStaleRides expires open/full rides past the cutoff that hold no
	// paid booking, cascading their pending bookings to expired. Returns
	// the number of rides expired.
	ExpireStaleRides(ctx context.Context, cutoff time.Time) (int, error)

	// AutoCompleteStaleRides completes open/full rides past the cutoff that
	// hold at least one paid booking, cascading their paid bookings to
	// completed. Returns the number of rides completed.
	AutoCompleteStaleRides(ctx context.Context, cutoff time.Time, completedAt time.Time) (int, error)
}

// BookingRepo defines data access for bookings.
//
//go:generate mockgen -destination=mocks/mock_booking_repo.go -package=mocks github.com/campuspool/campuspool/services/rides BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)

	// GetActiveBooking returns the rider's pending or paid booking on the
	// ride, or nil if none exists.
	GetActiveBooking(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error)

	SetApproval(ctx context.Context, bookingID uuid.UUID, status models.ApprovalStatus, approvedAt time.Time) error
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) error

	// RejectBooking cancels the booking and records the driver's rejection
	// in a single update.
	RejectBooking(ctx context.Context, bookingID uuid.UUID) error

	// MarkBookingPaid flips an approved pending booking to paid, guarded by
	// a capacity re-check against the confirmed-seat sum inside the same
	// statement. Returns false when the guard refused the update.
	MarkBookingPaid(ctx context.Context, bookingID uuid.UUID, paymentRef string) (bool, error)
}

// JobRepo defines data access for the background job ledger and the
// job-slot locks guarding concurrent sweeps.
//
//go:generate mockgen -destination=mocks/mock_job_repo.go -package=mocks github.com/campuspool/campuspool/services/rides JobRepo
type JobRepo interface {
	CreateJob(ctx context.Context, jobType models.JobType) (*models.BackgroundJob, error)
	CompleteJob(ctx context.Context, jobID uuid.UUID, affectedRows int) error
	FailJob(ctx context.Context, jobID uuid.UUID, errorMessage string) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.BackgroundJob, error)
	ListJobs(ctx context.Context, limit int) ([]*models.BackgroundJob, error)

	// AcquireJobLock claims the job slot for a job type. Returns false when
	// another run already holds it.
	AcquireJobLock(ctx context.Context, jobType models.JobType, ttl time.Duration) (bool, error)
	ReleaseJobLock(ctx context.Context, jobType models.JobType) error

	// RefreshRatingSummaries is a pass-through to the rating collaborator's
	// materialized summary.
	RefreshRatingSummaries(ctx context.Context) error
}
