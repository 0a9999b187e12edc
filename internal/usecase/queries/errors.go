package queries

import (
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingAccess    = errs.New("not allowed to access this booking")
	ErrRoomTypeNotFound = errs.New("room type not found")
	ErrInvalidCursor    = errs.New("invalid cursor")
	ErrInvalidQuery     = errs.New("invalid query parameters")
)
