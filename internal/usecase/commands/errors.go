package commands

import (
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrValidation              = errs.New("validation failed")
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrAccommodationNotFound   = errs.New("accommodation not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrPaymentNotFound         = errs.New("no pending payment found")
	ErrCapacityExceeded        = errs.New("not enough rooms available for the requested dates")
	ErrInvalidState            = errs.New("operation not allowed in the current state")
	ErrPaymentGateway          = errs.New("payment gateway error")
	ErrPaymentProcessing       = errs.New("payment is still being processed by the provider")
	ErrForbidden               = errs.New("not allowed to access this booking")
	ErrIdempotencyKeyReused    = errs.New("idempotency key was used with a different request")
	ErrIdempotencyInProgress   = errs.New("a request with this idempotency key is still in progress")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
