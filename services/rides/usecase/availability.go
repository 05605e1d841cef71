package usecase

import (
	"context"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/google/uuid"
)

// computeAvailability derives a ride's seat availability and status from
// the confirmed-seat sum. The cached seats_available column is never
// incremented or decremented; every transition that can shift capacity
// recalculates from this function instead, so a missed or double-applied
// delta cannot drift the cache.
func computeAvailability(ride *models.Ride, confirmedSeats int) (int, models.RideStatus) {
	available := ride.SeatsTotal - confirmedSeats
	if available < 0 {
		available = 0
	}
	if available > ride.SeatsTotal {
		available = ride.SeatsTotal
	}

	// Terminal rides keep their status; availability is still refreshed so
	// reads stay consistent with the booking set.
	if ride.Status.IsTerminal() {
		return available, ride.Status
	}

	if available == 0 {
		return available, models.RideStatusFull
	}
	return available, models.RideStatusOpen
}

// recomputeAvailability re-derives and persists a ride's availability
// after a booking transition. No-ops when nothing changed.
func (uc *rideUC) recomputeAvailability(ctx context.Context, rideID uuid.UUID) error {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return err
	}

	confirmed, err := uc.rideRepo.ConfirmedSeats(ctx, rideID)
	if err != nil {
		return err
	}

	available, status := computeAvailability(ride, confirmed)
	if available == ride.SeatsAvailable && status == ride.Status {
		return nil
	}

	logger.Info("Recalculated ride availability",
		logger.String("ride_id", rideID.String()),
		logger.Int("seats_available", available),
		logger.String("status", string(status)),
	)

	return uc.rideRepo.SetSeatsAndStatus(ctx, rideID, available, status)
}
