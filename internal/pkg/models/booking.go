package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// IsTerminal reports whether no further status mutation is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted || s == BookingStatusExpired
}

// IsActive reports whether the booking still occupies the rider's single
// active slot on a ride (pending or paid).
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusPaid
}

// ConsumesCapacity reports whether the booking counts against ride capacity.
// Only paid and completed bookings reserve seats; pending requests do not.
func (s BookingStatus) ConsumesCapacity() bool {
	return s == BookingStatusPaid || s == BookingStatusCompleted
}

// ApprovalStatus represents the driver's decision on a booking request
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Booking represents a rider's request for seats on a ride
type Booking struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	RideID          uuid.UUID      `json:"ride_id" db:"ride_id"`
	RiderID         uuid.UUID      `json:"rider_id" db:"rider_id"`
	SeatsBooked     int            `json:"seats_booked" db:"seats_booked"`
	Status          BookingStatus  `json:"status" db:"status"`
	ApprovalStatus  ApprovalStatus `json:"approval_status" db:"approval_status"`
	PricePerSeat    float64        `json:"price_per_seat" db:"price_per_seat"`
	TotalPrice      float64        `json:"total_price" db:"total_price"`
	Currency        string         `json:"currency" db:"currency"`
	PaymentIntentID *string        `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty" db:"approved_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the payload for posting a new booking
type CreateBookingRequest struct {
	RideID         uuid.UUID `json:"ride_id"`
	RiderID        uuid.UUID `json:"rider_id"`
	SeatsRequested int       `json:"seats_requested"`
}

// PaymentRequest records a confirmed payment intent against a booking.
// The payment gateway collaborator is the trigger source; its internals
// are out of scope here.
type PaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// ValidateBookingRequest is the payload for a dry-run capacity check
type ValidateBookingRequest struct {
	SeatsRequested int `json:"seats_requested"`
}

// BookingValidation is the outcome of a dry-run capacity check
type BookingValidation struct {
	IsValid        bool   `json:"is_valid"`
	AvailableSeats int    `json:"available_seats"`
	ErrorMessage   string `json:"error_message,omitempty"`
}
