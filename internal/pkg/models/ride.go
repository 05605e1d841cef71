package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusOpen      RideStatus = "open"
	RideStatusFull      RideStatus = "full"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusCompleted RideStatus = "completed"
	RideStatusExpired   RideStatus = "expired"
)

// IsTerminal reports whether no further status mutation is permitted.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCancelled || s == RideStatusCompleted || s == RideStatusExpired
}

// Ride represents a driver-offered trip with fixed seat capacity.
// SeatsAvailable is a cached derivation of the booking set; it is only
// written through the availability recalculation, never patched in place.
type Ride struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	DriverID       uuid.UUID  `json:"driver_id" db:"driver_id"`
	OriginLabel    string     `json:"origin_label" db:"origin_label"`
	DestLabel      string     `json:"destination_label" db:"destination_label"`
	SeatsTotal     int        `json:"seats_total" db:"seats_total"`
	SeatsAvailable int        `json:"seats_available" db:"seats_available"`
	Status         RideStatus `json:"status" db:"status"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	ArrivalTime    *time.Time `json:"arrival_time,omitempty" db:"arrival_time"`
	Price          float64    `json:"price" db:"price"`
	Currency       string     `json:"currency" db:"currency"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	AutoCompleted  bool       `json:"auto_completed" db:"auto_completed"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateRideRequest is the payload for posting a new ride
type CreateRideRequest struct {
	DriverID      uuid.UUID `json:"driver_id"`
	OriginLabel   string    `json:"origin_label"`
	DestLabel     string    `json:"destination_label"`
	SeatsTotal    int       `json:"seats_total"`
	DepartureTime time.Time `json:"departure_time"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
}

// RideCompleteRequest carries the acting driver for a manual completion
type RideCompleteRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}

// RideCancelRequest carries the acting driver for a ride cancellation
type RideCancelRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
}
