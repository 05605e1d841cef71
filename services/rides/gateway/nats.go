package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/campuspool/campuspool/internal/pkg/models"
	natspkg "github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/google/uuid"
)

// NATSGateway publishes booking and ride lifecycle events for the
// notification collaborator
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// bookingEvent is the wire payload for booking lifecycle subjects
type bookingEvent struct {
	BookingID   string    `json:"booking_id"`
	RideID      string    `json:"ride_id"`
	RiderID     string    `json:"rider_id"`
	SeatsBooked int       `json:"seats_booked"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	Currency    string    `json:"currency"`
	Timestamp   time.Time `json:"timestamp"`
}

// rideEvent is the wire payload for ride lifecycle subjects
type rideEvent struct {
	RideID            string    `json:"ride_id"`
	DriverID          string    `json:"driver_id,omitempty"`
	Status            string    `json:"status,omitempty"`
	BookingsCancelled int       `json:"bookings_cancelled,omitempty"`
	AutoCompleted     bool      `json:"auto_completed,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

func (g *NATSGateway) publishBooking(subject string, booking *models.Booking) error {
	event := bookingEvent{
		BookingID:   booking.ID.String(),
		RideID:      booking.RideID.String(),
		RiderID:     booking.RiderID.String(),
		SeatsBooked: booking.SeatsBooked,
		Status:      string(booking.Status),
		TotalPrice:  booking.TotalPrice,
		Currency:    booking.Currency,
		Timestamp:   time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	if err := g.client.Publish(subject, data); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.ErrorField(err),
			logger.String("subject", subject),
			logger.String("booking_id", event.BookingID),
		)
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

// NotifyBookingRequested publishes a booking requested event
func (g *NATSGateway) NotifyBookingRequested(ctx context.Context, booking *models.Booking) error {
	return g.publishBooking(constants.SubjectBookingRequested, booking)
}

// NotifyBookingApproved publishes a booking approved event
func (g *NATSGateway) NotifyBookingApproved(ctx context.Context, booking *models.Booking) error {
	return g.publishBooking(constants.SubjectBookingApproved, booking)
}

// NotifyBookingRejected publishes a booking rejected event
func (g *NATSGateway) NotifyBookingRejected(ctx context.Context, booking *models.Booking) error {
	return g.publishBooking(constants.SubjectBookingRejected, booking)
}

// NotifyBookingCancelled publishes a booking cancelled event
func (g *NATSGateway) NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error {
	return g.publishBooking(constants.SubjectBookingCancelled, booking)
}

// NotifyPaymentConfirmed publishes a booking paid event
func (g *NATSGateway) NotifyPaymentConfirmed(ctx context.Context, booking *models.Booking) error {
	return g.publishBooking(constants.SubjectBookingPaid, booking)
}

// NotifyRideCancelled publishes a ride cancelled event with the count of
// bookings the cancellation cascaded to
func (g *NATSGateway) NotifyRideCancelled(ctx context.Context, rideID uuid.UUID, cancelledBookings int) error {
	event := rideEvent{
		RideID:            rideID.String(),
		Status:            string(models.RideStatusCancelled),
		BookingsCancelled: cancelledBookings,
		Timestamp:         time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride cancelled event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectRideCancelled, data); err != nil {
		return fmt.Errorf("failed to publish ride cancelled event: %w", err)
	}

	return nil
}

// NotifyRideCompleted publishes a ride completed event
func (g *NATSGateway) NotifyRideCompleted(ctx context.Context, ride *models.Ride) error {
	event := rideEvent{
		RideID:        ride.ID.String(),
		DriverID:      ride.DriverID.String(),
		Status:        string(ride.Status),
		AutoCompleted: ride.AutoCompleted,
		Timestamp:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride completed event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectRideCompleted, data); err != nil {
		return fmt.Errorf("failed to publish ride completed event: %w", err)
	}

	return nil
}

// ScheduleRideReminder publishes a reminder request for a new ride. The
// notification collaborator owns the actual scheduling.
func (g *NATSGateway) ScheduleRideReminder(ctx context.Context, rideID uuid.UUID) error {
	event := rideEvent{
		RideID:    rideID.String(),
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride reminder event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectRideReminder, data); err != nil {
		return fmt.Errorf("failed to publish ride reminder event: %w", err)
	}

	return nil
}
