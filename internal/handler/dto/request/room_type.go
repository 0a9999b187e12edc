package request

import (
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateRoomTypeRequest struct {
	AccommodationID uuid.UUID `json:"accommodationId" binding:"required"`
	Name            string    `json:"name" binding:"required,max=200"`
	NightlyPrice    string    `json:"nightlyPrice" binding:"required"`
	Currency        string    `json:"currency" binding:"omitempty,len=3"`
	Capacity        int       `json:"capacity" binding:"required,min=1"`
	TotalInventory  int       `json:"totalInventory" binding:"min=0"`
}

func (r CreateRoomTypeRequest) ToCommand() (commands.CreateRoomTypeRequest, error) {
	var cmd commands.CreateRoomTypeRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.CreateRoomTypeRequest{}, err
	}
	return cmd, nil
}

// UpdateRoomTypeRequest is a partial update; omitted fields keep their value.
type UpdateRoomTypeRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	NightlyPrice   *string `json:"nightlyPrice" binding:"omitempty,min=1"`
	Capacity       *int    `json:"capacity" binding:"omitempty,min=1"`
	TotalInventory *int    `json:"totalInventory" binding:"omitempty,min=0"`
}

func (r UpdateRoomTypeRequest) IsEmpty() bool {
	return r.Name == nil && r.NightlyPrice == nil && r.Capacity == nil && r.TotalInventory == nil
}

func (r UpdateRoomTypeRequest) ToCommand() commands.UpdateRoomTypeRequest {
	return commands.UpdateRoomTypeRequest{
		Name:           r.Name,
		NightlyPrice:   r.NightlyPrice,
		Capacity:       r.Capacity,
		TotalInventory: r.TotalInventory,
	}
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
	Rooms    int    `form:"rooms"`
}

func (q AvailabilityQuery) ToQuery(roomTypeID uuid.UUID) queries.AvailabilityRequest {
	rooms := q.Rooms
	if rooms == 0 {
		rooms = 1
	}
	return queries.AvailabilityRequest{
		RoomTypeID: roomTypeID,
		CheckIn:    q.CheckIn,
		CheckOut:   q.CheckOut,
		Rooms:      rooms,
	}
}
