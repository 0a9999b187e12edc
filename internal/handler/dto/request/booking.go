package request

import (
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CreateBookingRequest dates are calendar dates (YYYY-MM-DD). Range and
// occupancy rules are checked by the use case so the messages stay uniform.
type CreateBookingRequest struct {
	RoomTypeID uuid.UUID `json:"roomTypeId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required"`
	CheckOut   string    `json:"checkOut" binding:"required"`
	NumRooms   int       `json:"numRooms" binding:"required"`
	NumGuests  int       `json:"numGuests" binding:"required"`
	GuestName  string    `json:"guestName" binding:"required,max=200"`
	GuestEmail string    `json:"guestEmail" binding:"required,max=320"`
	GuestPhone string    `json:"guestPhone" binding:"omitempty,max=32"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	var cmd commands.CreateBookingRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return cmd, nil
}

type ListBookingsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}

func (q ListBookingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
