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

// RideRepo provides data access to the ride capacity ledger
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	id, driver_id, origin_label, destination_label,
	seats_total, seats_available, status,
	departure_time, arrival_time, price, currency,
	completed_at, auto_completed, created_at, updated_at`

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if ride.ID == uuid.Nil {
		ride.ID = uuid.New()
	}
	now := time.Now().UTC()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (
			id, driver_id, origin_label, destination_label,
			seats_total, seats_available, status,
			departure_time, arrival_time, price, currency,
			auto_completed, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.ID,
		ride.DriverID,
		ride.OriginLabel,
		ride.DestLabel,
		ride.SeatsTotal,
		ride.SeatsAvailable,
		ride.Status,
		ride.DepartureTime,
		ride.ArrivalTime,
		ride.Price,
		ride.Currency,
		ride.AutoCompleted,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ride: %w", err)
	}

	return ride, nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT` + rideColumns + `
	FROM rides WHERE id = $1`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return &ride, nil
}

// SetSeatsAndStatus writes the recalculated availability for a ride
func (r *RideRepo) SetSeatsAndStatus(ctx context.Context, rideID uuid.UUID, seatsAvailable int, status models.RideStatus) error {
	query := `UPDATE rides SET seats_available = $1, status = $2, updated_at = NOW() WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, seatsAvailable, status, rideID)
	if err != nil {
		return fmt.Errorf("failed to update ride availability: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rides.ErrRideNotFound
	}

	return nil
}

// ConfirmedSeats returns the seat sum over the ride's paid and completed
// bookings
func (r *RideRepo) ConfirmedSeats(ctx context.Context, rideID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(seats_booked), 0)
		FROM bookings
		WHERE ride_id = $1 AND status IN ('paid', 'completed')
	`

	var confirmed int
	if err := r.db.GetContext(ctx, &confirmed, query, rideID); err != nil {
		return 0, fmt.Errorf("failed to sum confirmed seats: %w", err)
	}

	return confirmed, nil
}

// CancelRideCascade marks the ride cancelled and cascades cancellation to
// its active bookings in one transaction
func (r *RideRepo) CancelRideCascade(ctx context.Context, rideID uuid.UUID) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE rides SET status = 'cancelled', updated_at = NOW() WHERE id = $1`,
		rideID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel ride: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'cancelled', updated_at = NOW()
		 WHERE ride_id = $1 AND status IN ('pending', 'paid')`,
		rideID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel bookings: %w", err)
	}

	cancelled, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ride cancellation: %w", err)
	}

	return int(cancelled), nil
}

// CompleteRideCascade marks the ride completed and cascades completion to
// its paid bookings in one transaction
func (r *RideRepo) CompleteRideCascade(ctx context.Context, rideID uuid.UUID, completedAt time.Time, autoCompleted bool) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE rides SET status = 'completed', completed_at = $2, auto_completed = $3, updated_at = NOW()
		 WHERE id = $1`,
		rideID, completedAt, autoCompleted,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to complete ride: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'completed', completed_at = $2, updated_at = NOW()
		 WHERE ride_id = $1 AND status = 'paid'`,
		rideID, completedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to complete bookings: %w", err)
	}

	completed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ride completion: %w", err)
	}

	return int(completed), nil
}

// ExpireStaleRides expires open/full rides past the cutoff that hold no
// paid booking, cascading their pending bookings to expired
func (r *RideRepo) ExpireStaleRides(ctx context.Context, cutoff time.Time) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryxContext(ctx,
		`UPDATE rides
		 SET status = 'expired', auto_completed = TRUE, updated_at = NOW()
		 WHERE departure_time < $1
		   AND status IN ('open', 'full')
		   AND NOT EXISTS (
		     SELECT 1 FROM bookings
		     WHERE bookings.ride_id = rides.id AND bookings.status = 'paid'
		   )
		 RETURNING id`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale rides: %w", err)
	}

	expiredIDs, err := collectIDs(rows)
	if err != nil {
		return 0, err
	}

	if len(expiredIDs) > 0 {
		query, args, err := sqlx.In(
			`UPDATE bookings SET status = 'expired', updated_at = NOW()
			 WHERE status = 'pending' AND ride_id IN (?)`,
			expiredIDs,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to build cascade query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return 0, fmt.Errorf("failed to expire pending bookings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ride expiry: %w", err)
	}

	return len(expiredIDs), nil
}

// AutoCompleteStaleRides completes open/full rides past the cutoff that
// hold at least one paid booking, cascading their paid bookings to
// completed
func (r *RideRepo) AutoCompleteStaleRides(ctx context.Context, cutoff time.Time, completedAt time.Time) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryxContext(ctx,
		`UPDATE rides
		 SET status = 'completed', completed_at = $2, auto_completed = TRUE, updated_at = NOW()
		 WHERE departure_time < $1
		   AND status IN ('open', 'full')
		   AND EXISTS (
		     SELECT 1 FROM bookings
		     WHERE bookings.ride_id = rides.id AND bookings.status = 'paid'
		   )
		 RETURNING id`,
		cutoff, completedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to auto-complete stale rides: %w", err)
	}

	completedIDs, err := collectIDs(rows)
	if err != nil {
		return 0, err
	}

	if len(completedIDs) > 0 {
		query, args, err := sqlx.In(
			`UPDATE bookings SET status = 'completed', completed_at = ?, updated_at = NOW()
			 WHERE status = 'paid' AND ride_id IN (?)`,
			completedAt, completedIDs,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to build cascade query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return 0, fmt.Errorf("failed to complete paid bookings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ride auto-completion: %w", err)
	}

	return len(completedIDs), nil
}

// collectIDs drains a RETURNING id result set
func collectIDs(rows *sqlx.Rows) ([]uuid.UUID, error) {
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ride id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
