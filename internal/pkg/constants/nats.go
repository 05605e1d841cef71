package constants

// NATS Subjects
const (
	// Booking events
	SubjectBookingRequested = "booking.requested"
	SubjectBookingApproved  = "booking.approved"
	SubjectBookingRejected  = "booking.rejected"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingPaid      = "booking.paid"

	// Ride events
	SubjectRideCancelled = "ride.cancelled"
	SubjectRideCompleted = "ride.completed"
	SubjectRideReminder  = "ride.reminder"
)
