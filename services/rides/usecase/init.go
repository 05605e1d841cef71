package usecase

import (
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg         *models.Config
	rideRepo    rides.RideRepo
	bookingRepo rides.BookingRepo
	jobRepo     rides.JobRepo
	notifyGW    rides.NotificationGW
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	bookingRepo rides.BookingRepo,
	jobRepo rides.JobRepo,
	notifyGW rides.NotificationGW,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:         cfg,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		jobRepo:     jobRepo,
		notifyGW:    notifyGW,
	}, nil
}
