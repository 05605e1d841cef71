package rides

import (
	"errors"
	"fmt"
)

// Domain errors for the booking and ride lifecycle. Handlers map these to
// HTTP status codes; usecases wrap them with context via fmt.Errorf("%w").
var (
	// ErrRideNotFound indicates an unknown ride ID
	ErrRideNotFound = errors.New("ride not found")

	// ErrBookingNotFound indicates an unknown booking ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidRideState indicates the ride's status does not permit the operation
	ErrInvalidRideState = errors.New("ride state does not permit this operation")

	// ErrInvalidBookingState indicates the booking's status does not permit
	// the transition, including any attempt to leave a terminal status
	ErrInvalidBookingState = errors.New("booking state does not permit this operation")

	// ErrSelfBookingForbidden indicates a driver attempting to book their own ride
	ErrSelfBookingForbidden = errors.New("driver cannot book their own ride")

	// ErrDuplicateBooking indicates the rider already holds an active booking
	// on the ride
	ErrDuplicateBooking = errors.New("rider already has an active booking for this ride")

	// ErrCapacityExceeded indicates the requested seats exceed current availability
	ErrCapacityExceeded = errors.New("requested seats exceed available capacity")

	// ErrInvalidSeatCount indicates a seat request outside the per-booking bounds
	ErrInvalidSeatCount = errors.New("seats requested is outside the allowed range")

	// ErrDepartureInPast indicates the ride's departure time has already passed
	ErrDepartureInPast = errors.New("ride departure time is in the past")

	// ErrNotRideDriver indicates the acting user is not the ride's driver
	ErrNotRideDriver = errors.New("only the ride's driver may perform this operation")

	// ErrJobAlreadyRunning indicates another sweep of the same type holds the job slot
	ErrJobAlreadyRunning = errors.New("a job of this type is already running")

	// ErrInvalidJobType indicates an unknown background job type
	ErrInvalidJobType = errors.New("invalid job type")

	// ErrJobNotFound indicates an unknown background job ID
	ErrJobNotFound = errors.New("background job not found")
)

// CapacityError reports a seat request exceeding the ride's current
// availability, surfacing how many seats remain.
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d seats available, %d requested", e.Available, e.Requested)
}

// Is makes errors.Is(err, ErrCapacityExceeded) match CapacityError values.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
