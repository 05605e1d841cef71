package http

import (
	"errors"

	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides"
	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP responses. Unrecognized errors
// surface as 500 without leaking internals.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, rides.ErrRideNotFound),
		errors.Is(err, rides.ErrBookingNotFound),
		errors.Is(err, rides.ErrJobNotFound):
		return utils.NotFoundResponse(c, err.Error())

	case errors.Is(err, rides.ErrInvalidSeatCount),
		errors.Is(err, rides.ErrDepartureInPast),
		errors.Is(err, rides.ErrInvalidJobType):
		return utils.BadRequestResponse(c, err.Error())

	case errors.Is(err, rides.ErrSelfBookingForbidden),
		errors.Is(err, rides.ErrNotRideDriver):
		return utils.ForbiddenResponse(c, err.Error())

	case errors.Is(err, rides.ErrCapacityExceeded),
		errors.Is(err, rides.ErrDuplicateBooking),
		errors.Is(err, rides.ErrInvalidRideState),
		errors.Is(err, rides.ErrInvalidBookingState),
		errors.Is(err, rides.ErrJobAlreadyRunning):
		return utils.ConflictResponse(c, err.Error())

	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}
