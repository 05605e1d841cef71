package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/campuspool/campuspool/services/rides/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newJSONContext(t *testing.T, method string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	e := echo.New()
	request := httptest.NewRequest(method, "/", &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestBookingsHandler_CreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	req := models.CreateBookingRequest{
		RideID:         uuid.New(),
		RiderID:        uuid.New(),
		SeatsRequested: 2,
	}
	created := &models.Booking{
		ID:     uuid.New(),
		RideID: req.RideID,
		Status: models.BookingStatusPending,
	}

	mockUC.EXPECT().CreateBooking(gomock.Any(), req).Return(created, nil)

	c, recorder := newJSONContext(t, http.MethodPost, req)
	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestBookingsHandler_CreateBooking_CapacityConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	req := models.CreateBookingRequest{
		RideID:         uuid.New(),
		RiderID:        uuid.New(),
		SeatsRequested: 3,
	}

	mockUC.EXPECT().CreateBooking(gomock.Any(), req).
		Return(nil, &rides.CapacityError{Requested: 3, Available: 1})

	c, recorder := newJSONContext(t, http.MethodPost, req)
	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBookingsHandler_CreateBooking_SelfBookingForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	req := models.CreateBookingRequest{
		RideID:         uuid.New(),
		RiderID:        uuid.New(),
		SeatsRequested: 1,
	}

	mockUC.EXPECT().CreateBooking(gomock.Any(), req).Return(nil, rides.ErrSelfBookingForbidden)

	c, recorder := newJSONContext(t, http.MethodPost, req)
	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestBookingsHandler_CreateBooking_MissingIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBookingsHandler(mocks.NewMockRideUC(ctrl))

	c, recorder := newJSONContext(t, http.MethodPost, models.CreateBookingRequest{SeatsRequested: 1})
	assert.NoError(t, handler.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBookingsHandler_GetBooking_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	bookingID := uuid.New()
	mockUC.EXPECT().GetBooking(gomock.Any(), bookingID).Return(nil, rides.ErrBookingNotFound)

	c, recorder := newJSONContext(t, http.MethodGet, nil)
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID.String())

	assert.NoError(t, handler.GetBooking(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBookingsHandler_ApproveBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	bookingID := uuid.New()
	mockUC.EXPECT().ApproveBooking(gomock.Any(), bookingID).Return(nil)

	c, recorder := newJSONContext(t, http.MethodPut, nil)
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID.String())

	assert.NoError(t, handler.ApproveBooking(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBookingsHandler_CancelBooking_TerminalConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	bookingID := uuid.New()
	mockUC.EXPECT().CancelBooking(gomock.Any(), bookingID).Return(rides.ErrInvalidBookingState)

	c, recorder := newJSONContext(t, http.MethodPut, nil)
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID.String())

	assert.NoError(t, handler.CancelBooking(c))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBookingsHandler_RecordPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRideUC(ctrl)
	handler := NewBookingsHandler(mockUC)

	bookingID := uuid.New()
	paid := &models.Booking{ID: bookingID, Status: models.BookingStatusPaid}
	mockUC.EXPECT().RecordPayment(gomock.Any(), bookingID, "pi_12345").Return(paid, nil)

	c, recorder := newJSONContext(t, http.MethodPut, models.PaymentRequest{PaymentIntentID: "pi_12345"})
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID.String())

	assert.NoError(t, handler.RecordPayment(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBookingsHandler_RecordPayment_MissingIntentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBookingsHandler(mocks.NewMockRideUC(ctrl))

	c, recorder := newJSONContext(t, http.MethodPut, models.PaymentRequest{})
	c.SetParamNames("bookingID")
	c.SetParamValues(uuid.New().String())

	assert.NoError(t, handler.RecordPayment(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
