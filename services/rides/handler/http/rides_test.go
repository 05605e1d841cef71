package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/rides/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRidesHandler_CreateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	req := models.CreateRideRequest{
		DriverID:      uuid.New(),
		OriginLabel:   "North Campus",
		DestLabel:     "Central Station",
		SeatsTotal:    3,
		DepartureTime: time.Now().Add(4 * time.Hour).UTC().Truncate(time.Second),
		Price:         15000,
	}
	created := &models.Ride{ID: uuid.New(), DriverID: req.DriverID, Status: models.RideStatusOpen}

	mockUC.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(created, nil)

	c, recorder := newJSONContext(t, http.MethodPost, req)
	assert.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRidesHandler_CreateRide_MissingDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, recorder := newJSONContext(t, http.MethodPost, models.CreateRideRequest{SeatsTotal: 3})
	assert.NoError(t, handler.CreateRide(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRidesHandler_GetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	mockUC.EXPECT().GetRide(gomock.Any(), rideID).Return(nil, rides.ErrRideNotFound)

	c, recorder := newJSONContext(t, http.MethodGet, nil)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRidesHandler_GetRide_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	c, recorder := newJSONContext(t, http.MethodGet, nil)
	c.SetParamNames("rideID")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, handler.GetRide(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRidesHandler_CancelRide_NotDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	driverID := uuid.New()
	mockUC.EXPECT().CancelRide(gomock.Any(), rideID, driverID).Return(0, rides.ErrNotRideDriver)

	c, recorder := newJSONContext(t, http.MethodPut, models.RideCancelRequest{DriverID: driverID})
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.CancelRide(c))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRidesHandler_CompleteRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	driverID := uuid.New()
	completed := &models.Ride{ID: rideID, DriverID: driverID, Status: models.RideStatusCompleted}
	mockUC.EXPECT().CompleteRide(gomock.Any(), rideID, driverID).Return(completed, nil)

	c, recorder := newJSONContext(t, http.MethodPut, models.RideCompleteRequest{DriverID: driverID})
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.CompleteRide(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRidesHandler_ValidateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockUC)

	rideID := uuid.New()
	mockUC.EXPECT().ValidateBookingRequest(gomock.Any(), rideID, 2).
		Return(&models.BookingValidation{IsValid: true, AvailableSeats: 3}, nil)

	c, recorder := newJSONContext(t, http.MethodPost, models.ValidateBookingRequest{SeatsRequested: 2})
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	assert.NoError(t, handler.ValidateBooking(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
