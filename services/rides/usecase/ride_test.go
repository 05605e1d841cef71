package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateRide_Success(t *testing.T) {
	f := setupUC(t)
	driverID := uuid.New()

	f.rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Ride) (*models.Ride, error) {
			r.ID = uuid.New()
			return r, nil
		})
	f.notifyGW.EXPECT().ScheduleRideReminder(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := f.uc.CreateRide(context.Background(), models.CreateRideRequest{
		DriverID:      driverID,
		OriginLabel:   "North Campus",
		DestLabel:     "Central Station",
		SeatsTotal:    3,
		DepartureTime: time.Now().Add(4 * time.Hour),
		Price:         15000,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusOpen, ride.Status)
	assert.Equal(t, 3, ride.SeatsAvailable)
	assert.Equal(t, "IDR", ride.Currency)
}

func TestCreateRide_DepartureInPast(t *testing.T) {
	f := setupUC(t)

	_, err := f.uc.CreateRide(context.Background(), models.CreateRideRequest{
		DriverID:      uuid.New(),
		SeatsTotal:    3,
		DepartureTime: time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, rides.ErrDepartureInPast)
}

func TestCancelRide_CascadesActiveBookings(t *testing.T) {
	f := setupUC(t)
	ride := openRide(3)
	ride.SeatsAvailable = 1

	cancelledRide := *ride
	cancelledRide.Status = models.RideStatusCancelled

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().CancelRideCascade(gomock.Any(), ride.ID).Return(2, nil)
	// The cascade released the paid seats; the stored count catches up while
	// the ride keeps its terminal status.
	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(&cancelledRide, nil)
	f.rideRepo.EXPECT().ConfirmedSeats(gomock.Any(), ride.ID).Return(0, nil)
	f.rideRepo.EXPECT().SetSeatsAndStatus(gomock.Any(), ride.ID, 3, models.RideStatusCancelled).Return(nil)
	f.notifyGW.EXPECT().NotifyRideCancelled(gomock.Any(), ride.ID, 2).Return(nil)

	cancelled, err := f.uc.CancelRide(context.Background(), ride.ID, ride.DriverID)
	assert.NoError(t, err)
	assert.Equal(t, 2, cancelled)
}

func TestCancelRide_NotDriver(t *testing.T) {
	f := setupUC(t)
	ride := openRide(3)

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CancelRide(context.Background(), ride.ID, uuid.New())
	assert.ErrorIs(t, err, rides.ErrNotRideDriver)
}

func TestCancelRide_TerminalRideRejected(t *testing.T) {
	f := setupUC(t)
	ride := openRide(3)
	ride.Status = models.RideStatusCompleted

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CancelRide(context.Background(), ride.ID, ride.DriverID)
	assert.ErrorIs(t, err, rides.ErrInvalidRideState)
}

func TestCompleteRide_Success(t *testing.T) {
	f := setupUC(t)
	ride := openRide(3)
	completedRide := *ride
	completedRide.Status = models.RideStatusCompleted

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().CompleteRideCascade(gomock.Any(), ride.ID, gomock.Any(), false).Return(1, nil)
	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(&completedRide, nil)
	f.notifyGW.EXPECT().NotifyRideCompleted(gomock.Any(), &completedRide).Return(nil)

	updated, err := f.uc.CompleteRide(context.Background(), ride.ID, ride.DriverID)
	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, updated.Status)
}

func TestCompleteRide_NotDriver(t *testing.T) {
	f := setupUC(t)
	ride := openRide(3)

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CompleteRide(context.Background(), ride.ID, uuid.New())
	assert.ErrorIs(t, err, rides.ErrNotRideDriver)
}
