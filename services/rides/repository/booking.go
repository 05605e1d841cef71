package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BookingRepo provides data access to bookings
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `
	id, ride_id, rider_id, seats_booked, status, approval_status,
	price_per_seat, total_price, currency, payment_intent_id,
	approved_at, completed_at, created_at, updated_at`

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (
			id, ride_id, rider_id, seats_booked, status, approval_status,
			price_per_seat, total_price, currency, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.RideID,
		booking.RiderID,
		booking.SeatsBooked,
		booking.Status,
		booking.ApprovalStatus,
		booking.PricePerSeat,
		booking.TotalPrice,
		booking.Currency,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + `
	FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// GetActiveBooking returns the rider's pending or paid booking on the
// ride, or nil if none exists
func (r *BookingRepo) GetActiveBooking(ctx context.Context, rideID, riderID uuid.UUID) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + `
	FROM bookings
	WHERE ride_id = $1 AND rider_id = $2 AND status IN ('pending', 'paid')
	LIMIT 1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, rideID, riderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}

	return &booking, nil
}

// SetApproval records the driver's approval decision
func (r *BookingRepo) SetApproval(ctx context.Context, bookingID uuid.UUID, status models.ApprovalStatus, approvedAt time.Time) error {
	query := `UPDATE bookings SET approval_status = $1, approved_at = $2, updated_at = NOW() WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, status, approvedAt, bookingID)
	if err != nil {
		return fmt.Errorf("failed to set approval: %w", err)
	}

	return requireBookingRow(res)
}

// UpdateBookingStatus moves a booking to the given status
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, status, bookingID)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return requireBookingRow(res)
}

// RejectBooking cancels the booking and records the rejection in a single
// update
func (r *BookingRepo) RejectBooking(ctx context.Context, bookingID uuid.UUID) error {
	query := `UPDATE bookings SET status = 'cancelled', approval_status = 'rejected', updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, bookingID)
	if err != nil {
		return fmt.Errorf("failed to reject booking: %w", err)
	}

	return requireBookingRow(res)
}

// MarkBookingPaid flips an approved pending booking to paid. The capacity
// guard re-derives the ride's confirmed-seat sum inside the same
// statement, so two concurrent payments can never both land when only one
// fits. Returns false when the guard refused the update.
func (r *BookingRepo) MarkBookingPaid(ctx context.Context, bookingID uuid.UUID, paymentRef string) (bool, error) {
	query := `
		UPDATE bookings AS b
		SET status = 'paid', payment_intent_id = $2, updated_at = NOW()
		FROM rides AS r
		WHERE b.id = $1
		  AND r.id = b.ride_id
		  AND b.status = 'pending'
		  AND b.approval_status = 'approved'
		  AND b.seats_booked <= r.seats_total - (
		    SELECT COALESCE(SUM(seats_booked), 0)
		    FROM bookings
		    WHERE ride_id = b.ride_id AND status IN ('paid', 'completed')
		  )
	`

	res, err := r.db.ExecContext(ctx, query, bookingID, paymentRef)
	if err != nil {
		return false, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func requireBookingRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrBookingNotFound
	}
	return nil
}
