package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
)

const defaultCurrency = "IDR"

// CreateRide publishes a new ride offer with all seats available
func (uc *rideUC) CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error) {
	if req.SeatsTotal < 1 {
		return nil, fmt.Errorf("seats_total must be at least 1: %w", rides.ErrInvalidSeatCount)
	}
	if !req.DepartureTime.After(time.Now()) {
		return nil, rides.ErrDepartureInPast
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	ride := &models.Ride{
		DriverID:       req.DriverID,
		OriginLabel:    req.OriginLabel,
		DestLabel:      req.DestLabel,
		SeatsTotal:     req.SeatsTotal,
		SeatsAvailable: req.SeatsTotal,
		Status:         models.RideStatusOpen,
		DepartureTime:  req.DepartureTime,
		Price:          req.Price,
		Currency:       currency,
	}

	created, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		logger.Error("Failed to create ride",
			logger.ErrorField(err),
			logger.String("driver_id", req.DriverID.String()),
		)
		return nil, err
	}

	if err := uc.notifyGW.ScheduleRideReminder(ctx, created.ID); err != nil {
		logger.Warn("Failed to schedule ride reminder",
			logger.ErrorField(err),
			logger.String("ride_id", created.ID.String()),
		)
	}

	logger.Info("Ride created",
		logger.String("ride_id", created.ID.String()),
		logger.String("driver_id", created.DriverID.String()),
		logger.Int("seats_total", created.SeatsTotal),
	)

	return created, nil
}

// GetRide retrieves a ride by ID
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, rideID)
}

// CancelRide cancels a non-terminal ride and cascades cancellation to its
// active bookings. Returns the number of bookings cancelled.
func (uc *rideUC) CancelRide(ctx context.Context, rideID, driverID uuid.UUID) (int, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return 0, err
	}
	if ride.DriverID != driverID {
		return 0, rides.ErrNotRideDriver
	}
	if ride.Status.IsTerminal() {
		return 0, fmt.Errorf("ride is %s: %w", ride.Status, rides.ErrInvalidRideState)
	}

	cancelled, err := uc.rideRepo.CancelRideCascade(ctx, rideID)
	if err != nil {
		logger.Error("Failed to cancel ride",
			logger.ErrorField(err),
			logger.String("ride_id", rideID.String()),
		)
		return 0, err
	}

	// The cascade may have cancelled paid bookings; the stored seat count
	// stays in step with the confirmed sum even though the ride is terminal.
	if err := uc.recomputeAvailability(ctx, rideID); err != nil {
		logger.Error("Failed to recalculate availability after ride cancellation",
			logger.ErrorField(err),
			logger.String("ride_id", rideID.String()),
		)
		return 0, err
	}

	if err := uc.notifyGW.NotifyRideCancelled(ctx, rideID, cancelled); err != nil {
		logger.Warn("Failed to publish ride cancelled event",
			logger.ErrorField(err),
			logger.String("ride_id", rideID.String()),
		)
	}

	logger.Info("Ride cancelled",
		logger.String("ride_id", rideID.String()),
		logger.Int("bookings_cancelled", cancelled),
	)

	return cancelled, nil
}

// CompleteRide marks a non-terminal ride completed and cascades completion
// to its paid bookings
func (uc *rideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, rides.ErrNotRideDriver
	}
	if ride.Status.IsTerminal() {
		return nil, fmt.Errorf("ride is %s: %w", ride.Status, rides.ErrInvalidRideState)
	}

	completedAt := time.Now().UTC()
	completed, err := uc.rideRepo.CompleteRideCascade(ctx, rideID, completedAt, false)
	if err != nil {
		logger.Error("Failed to complete ride",
			logger.ErrorField(err),
			logger.String("ride_id", rideID.String()),
		)
		return nil, err
	}

	updated, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if err := uc.notifyGW.NotifyRideCompleted(ctx, updated); err != nil {
		logger.Warn("Failed to publish ride completed event",
			logger.ErrorField(err),
			logger.String("ride_id", rideID.String()),
		)
	}

	logger.Info("Ride completed",
		logger.String("ride_id", rideID.String()),
		logger.Int("bookings_completed", completed),
	)

	return updated, nil
}
