package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	AccommodationID uuid.UUID `json:"accommodationId"`
	Name            string    `json:"name"`
	NightlyPrice    string    `json:"nightlyPrice"`
	Currency        string    `json:"currency"`
	Capacity        int       `json:"capacity"`
	TotalInventory  int       `json:"totalInventory"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromRoomTypeView(v *queries.RoomTypeView) (*RoomTypeResponse, error) {
	var res RoomTypeResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomTypeViews(vs []*queries.RoomTypeView) ([]*RoomTypeResponse, error) {
	res := make([]*RoomTypeResponse, 0, len(vs))
	if len(vs) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

type AvailabilityResponse struct {
	RoomTypeID     uuid.UUID `json:"roomTypeId"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	Nights         int       `json:"nights"`
	RequestedRooms int       `json:"requestedRooms"`
	TotalInventory int       `json:"totalInventory"`
	Remaining      int       `json:"remaining"`
	Available      bool      `json:"available"`
	QuotedPrice    string    `json:"quotedPrice"`
	Currency       string    `json:"currency"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
