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

// CreateBooking places a pending seat request against a ride. Pending
// bookings do not consume capacity; the availability check here is an
// early rejection of requests that could never fit, not a reservation.
func (uc *rideUC) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.SeatsRequested < 1 || req.SeatsRequested > uc.cfg.Rides.MaxSeatsPerBooking {
		return nil, fmt.Errorf("seats_requested must be between 1 and %d: %w",
			uc.cfg.Rides.MaxSeatsPerBooking, rides.ErrInvalidSeatCount)
	}

	ride, err := uc.rideRepo.GetRide(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen && ride.Status != models.RideStatusFull {
		return nil, fmt.Errorf("ride is %s: %w", ride.Status, rides.ErrInvalidRideState)
	}
	// A stale ride can still be open before the sweeper reaches it; its
	// departure time already gates new bookings.
	if !ride.DepartureTime.After(time.Now()) {
		return nil, rides.ErrDepartureInPast
	}
	if ride.DriverID == req.RiderID {
		return nil, rides.ErrSelfBookingForbidden
	}

	active, err := uc.bookingRepo.GetActiveBooking(ctx, req.RideID, req.RiderID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, rides.ErrDuplicateBooking
	}

	confirmed, err := uc.rideRepo.ConfirmedSeats(ctx, req.RideID)
	if err != nil {
		return nil, err
	}
	available, _ := computeAvailability(ride, confirmed)
	if req.SeatsRequested > available {
		return nil, &rides.CapacityError{Requested: req.SeatsRequested, Available: available}
	}

	booking := &models.Booking{
		RideID:         req.RideID,
		RiderID:        req.RiderID,
		SeatsBooked:    req.SeatsRequested,
		Status:         models.BookingStatusPending,
		ApprovalStatus: models.ApprovalStatusPending,
		PricePerSeat:   ride.Price,
		TotalPrice:     ride.Price * float64(req.SeatsRequested),
		Currency:       ride.Currency,
	}

	created, err := uc.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.ErrorField(err),
			logger.String("ride_id", req.RideID.String()),
			logger.String("rider_id", req.RiderID.String()),
		)
		return nil, err
	}

	if err := uc.notifyGW.NotifyBookingRequested(ctx, created); err != nil {
		logger.Warn("Failed to publish booking requested event",
			logger.ErrorField(err),
			logger.String("booking_id", created.ID.String()),
		)
	}

	logger.Info("Booking created",
		logger.String("booking_id", created.ID.String()),
		logger.String("ride_id", created.RideID.String()),
		logger.Int("seats_booked", created.SeatsBooked),
	)

	return created, nil
}

// GetBooking retrieves a booking by ID
func (uc *rideUC) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// ApproveBooking records the driver's approval on a pending booking.
// Approval grants permission to pay; it reserves nothing. Seats are
// committed only when the payment lands. The capacity rule still applies
// here so a driver cannot hand out approvals the ride can no longer
// honor; the booking itself is pending, so its own seats are not counted.
func (uc *rideUC) ApproveBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusPending || booking.ApprovalStatus != models.ApprovalStatusPending {
		return fmt.Errorf("booking is %s/%s: %w",
			booking.Status, booking.ApprovalStatus, rides.ErrInvalidBookingState)
	}

	ride, err := uc.rideRepo.GetRide(ctx, booking.RideID)
	if err != nil {
		return err
	}
	confirmed, err := uc.rideRepo.ConfirmedSeats(ctx, booking.RideID)
	if err != nil {
		return err
	}
	available, _ := computeAvailability(ride, confirmed)
	if booking.SeatsBooked > available {
		return &rides.CapacityError{Requested: booking.SeatsBooked, Available: available}
	}

	if err := uc.bookingRepo.SetApproval(ctx, bookingID, models.ApprovalStatusApproved, time.Now().UTC()); err != nil {
		return err
	}

	if err := uc.notifyGW.NotifyBookingApproved(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking approved event",
			logger.ErrorField(err),
			logger.String("booking_id", bookingID.String()),
		)
	}

	return nil
}

// RejectBooking records the driver's rejection and cancels the booking
func (uc *rideUC) RejectBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusPending || booking.ApprovalStatus != models.ApprovalStatusPending {
		return fmt.Errorf("booking is %s/%s: %w",
			booking.Status, booking.ApprovalStatus, rides.ErrInvalidBookingState)
	}

	if err := uc.bookingRepo.RejectBooking(ctx, bookingID); err != nil {
		return err
	}

	if err := uc.notifyGW.NotifyBookingRejected(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking rejected event",
			logger.ErrorField(err),
			logger.String("booking_id", bookingID.String()),
		)
	}

	return nil
}

// CancelBooking cancels a non-terminal booking and releases any seats it
// was holding
func (uc *rideUC) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status.IsTerminal() {
		return fmt.Errorf("booking is %s: %w", booking.Status, rides.ErrInvalidBookingState)
	}

	if err := uc.bookingRepo.UpdateBookingStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}

	// A cancelled paid booking frees its seats, which can flip a full ride
	// back to open.
	if err := uc.recomputeAvailability(ctx, booking.RideID); err != nil {
		logger.Error("Failed to recalculate availability after cancellation",
			logger.ErrorField(err),
			logger.String("ride_id", booking.RideID.String()),
		)
		return err
	}

	if err := uc.notifyGW.NotifyBookingCancelled(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking cancelled event",
			logger.ErrorField(err),
			logger.String("booking_id", bookingID.String()),
		)
	}

	return nil
}

// RecordPayment confirms payment on an approved pending booking. This is
// the single point where seats are actually committed: the repository's
// guarded update re-checks capacity in the same statement, so when several
// approved bookings race for the last seats only the first payment lands.
func (uc *rideUC) RecordPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) (*models.Booking, error) {
	applied, err := uc.bookingRepo.MarkBookingPaid(ctx, bookingID, paymentRef)
	if err != nil {
		return nil, err
	}

	if !applied {
		return nil, uc.classifyPaymentRefusal(ctx, bookingID)
	}

	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := uc.recomputeAvailability(ctx, booking.RideID); err != nil {
		logger.Error("Failed to recalculate availability after payment",
			logger.ErrorField(err),
			logger.String("ride_id", booking.RideID.String()),
		)
		return nil, err
	}

	if err := uc.notifyGW.NotifyPaymentConfirmed(ctx, booking); err != nil {
		logger.Warn("Failed to publish payment confirmed event",
			logger.ErrorField(err),
			logger.String("booking_id", bookingID.String()),
		)
	}

	logger.Info("Payment recorded",
		logger.String("booking_id", bookingID.String()),
		logger.String("ride_id", booking.RideID.String()),
		logger.Int("seats_booked", booking.SeatsBooked),
	)

	return booking, nil
}

// classifyPaymentRefusal inspects a booking after the guarded payment
// update declined it, to report which precondition failed
func (uc *rideUC) classifyPaymentRefusal(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != models.BookingStatusPending || booking.ApprovalStatus != models.ApprovalStatusApproved {
		return fmt.Errorf("booking is %s/%s: %w",
			booking.Status, booking.ApprovalStatus, rides.ErrInvalidBookingState)
	}

	ride, err := uc.rideRepo.GetRide(ctx, booking.RideID)
	if err != nil {
		return err
	}
	confirmed, err := uc.rideRepo.ConfirmedSeats(ctx, booking.RideID)
	if err != nil {
		return err
	}
	available, _ := computeAvailability(ride, confirmed)

	return &rides.CapacityError{Requested: booking.SeatsBooked, Available: available}
}

// ValidateBookingRequest is a dry-run capacity check against a ride. It
// never mutates anything and its answer can be stale by the time a real
// booking follows it.
func (uc *rideUC) ValidateBookingRequest(ctx context.Context, rideID uuid.UUID, seatsRequested int) (*models.BookingValidation, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	confirmed, err := uc.rideRepo.ConfirmedSeats(ctx, rideID)
	if err != nil {
		return nil, err
	}
	available, _ := computeAvailability(ride, confirmed)

	validation := &models.BookingValidation{AvailableSeats: available}

	switch {
	case seatsRequested < 1 || seatsRequested > uc.cfg.Rides.MaxSeatsPerBooking:
		validation.ErrorMessage = fmt.Sprintf("seats_requested must be between 1 and %d", uc.cfg.Rides.MaxSeatsPerBooking)
	case ride.Status != models.RideStatusOpen && ride.Status != models.RideStatusFull:
		validation.ErrorMessage = fmt.Sprintf("ride is %s", ride.Status)
	case !ride.DepartureTime.After(time.Now()):
		validation.ErrorMessage = "ride departure time has passed"
	case seatsRequested > available:
		validation.ErrorMessage = fmt.Sprintf("only %d seats available, %d requested", available, seatsRequested)
	default:
		validation.IsValid = true
	}

	return validation, nil
}
