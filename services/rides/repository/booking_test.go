package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/rides/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	booking := &models.Booking{
		RideID:         uuid.New(),
		RiderID:        uuid.New(),
		SeatsBooked:    2,
		Status:         models.BookingStatusPending,
		ApprovalStatus: models.ApprovalStatusPending,
		PricePerSeat:   15000,
		TotalPrice:     30000,
		Currency:       "IDR",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(
			sqlmock.AnyArg(), booking.RideID, booking.RiderID, booking.SeatsBooked,
			booking.Status, booking.ApprovalStatus,
			booking.PricePerSeat, booking.TotalPrice, booking.Currency,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateBooking(context.Background(), booking)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBooking(context.Background(), bookingID)
	assert.ErrorIs(t, err, rides.ErrBookingNotFound)
}

func TestGetActiveBooking_NoneReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	rideID := uuid.New()
	riderID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID, riderID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.GetActiveBooking(context.Background(), rideID, riderID)
	assert.NoError(t, err)
	assert.Nil(t, booking)
}

func TestSetApproval_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	approvedAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET approval_status")).
		WithArgs(models.ApprovalStatusApproved, approvedAt, bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetApproval(context.Background(), bookingID, models.ApprovalStatusApproved, approvedAt)
	assert.NoError(t, err)
}

func TestRejectBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = 'cancelled', approval_status = 'rejected'")).
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RejectBooking(context.Background(), bookingID)
	assert.ErrorIs(t, err, rides.ErrBookingNotFound)
}

func TestMarkBookingPaid_Applied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings AS b")).
		WithArgs(bookingID, "pi_12345").
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.MarkBookingPaid(context.Background(), bookingID, "pi_12345")
	assert.NoError(t, err)
	assert.True(t, applied)
}

func TestMarkBookingPaid_GuardRefused(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	bookingID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings AS b")).
		WithArgs(bookingID, "pi_12345").
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.MarkBookingPaid(context.Background(), bookingID, "pi_12345")
	assert.NoError(t, err)
	assert.False(t, applied)
}
