package rides

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/google/uuid"
)

// NotificationGW publishes lifecycle events for the notification
// collaborator. Every call is fire-and-forget from the caller's point of
// view: failures are logged and never fail the state transition they
// accompany.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/campuspool/campuspool/services/rides NotificationGW
type NotificationGW interface {
	NotifyBookingRequested(ctx context.Context, booking *models.Booking) error
	NotifyBookingApproved(ctx context.Context, booking *models.Booking) error
	NotifyBookingRejected(ctx context.Context, booking *models.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error
	NotifyPaymentConfirmed(ctx context.Context, booking *models.Booking) error
	NotifyRideCancelled(ctx context.Context, rideID uuid.UUID, cancelledBookings int) error
	NotifyRideCompleted(ctx context.Context, ride *models.Ride) error
	ScheduleRideReminder(ctx context.Context, rideID uuid.UUID) error
}
