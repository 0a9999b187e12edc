package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type statusMapping struct {
	target error
	status int
}

// first match wins
var useCaseStatuses = []statusMapping{
	{commands.ErrValidation, http.StatusBadRequest},
	{queries.ErrInvalidQuery, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{commands.ErrForbidden, http.StatusForbidden},
	{queries.ErrBookingAccess, http.StatusForbidden},
	{commands.ErrRoomTypeNotFound, http.StatusNotFound},
	{queries.ErrRoomTypeNotFound, http.StatusNotFound},
	{commands.ErrAccommodationNotFound, http.StatusNotFound},
	{commands.ErrBookingNotFound, http.StatusNotFound},
	{queries.ErrBookingNotFound, http.StatusNotFound},
	{commands.ErrPaymentNotFound, http.StatusNotFound},
	{commands.ErrCapacityExceeded, http.StatusConflict},
	{commands.ErrInvalidState, http.StatusConflict},
	{commands.ErrIdempotencyInProgress, http.StatusConflict},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity},
	{commands.ErrPaymentGateway, http.StatusBadGateway},
}

func statusFor(err error) int {
	for _, m := range useCaseStatuses {
		if errs.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// abortWithUseCaseError exposes the error text for client errors only.
func abortWithUseCaseError(c *gin.Context, err error) {
	status := statusFor(err)
	switch {
	case status == http.StatusBadGateway:
		httperr.AbortWithError(c, status, err, "Payment provider unavailable", nil)
	case status >= http.StatusInternalServerError:
		httperr.AbortWithError(c, status, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, status, err, err.Error(), nil)
	}
}
