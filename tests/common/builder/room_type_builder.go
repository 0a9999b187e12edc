//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	ID              uuid.UUID
	AccommodationID uuid.UUID
	Name            string
	NightlyPrice    string
	Currency        string
	Capacity        int
	TotalInventory  int
	Now             time.Time
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:              uuid.New(),
		AccommodationID: uuid.New(),
		Name:            "Deluxe Double",
		NightlyPrice:    "580.00",
		Currency:        "usd",
		Capacity:        2,
		TotalInventory:  5,
		Now:             time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomTypeBuilder) BuildDomain() (*inventory.RoomType, error) {
	rate, err := money.Parse(r.NightlyPrice, r.Currency)
	if err != nil {
		return nil, err
	}
	return inventory.NewRoomType(r.AccommodationID, r.Name, rate, r.Capacity, r.TotalInventory, r.Now)
}

// BuildStored skips validation and keeps ID, as if loaded from storage.
func (r *RoomTypeBuilder) BuildStored() *inventory.RoomType {
	rate, _ := money.Parse(r.NightlyPrice, r.Currency)
	return inventory.ReconstructRoomType(r.ID, r.AccommodationID, r.Name, rate, r.Capacity, r.TotalInventory, r.Now, r.Now)
}

func (r *RoomTypeBuilder) BuildCommand() commands.CreateRoomTypeRequest {
	return commands.CreateRoomTypeRequest{
		AccommodationID: r.AccommodationID,
		Name:            r.Name,
		NightlyPrice:    r.NightlyPrice,
		Currency:        r.Currency,
		Capacity:        r.Capacity,
		TotalInventory:  r.TotalInventory,
	}
}

func (r *RoomTypeBuilder) BuildCreateRequestDTO() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		AccommodationID: r.AccommodationID,
		Name:            r.Name,
		NightlyPrice:    r.NightlyPrice,
		Currency:        r.Currency,
		Capacity:        r.Capacity,
		TotalInventory:  r.TotalInventory,
	}
}

func (r *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	rate, _ := money.Parse(r.NightlyPrice, r.Currency)
	return &queries.RoomTypeView{
		ID:                r.ID,
		AccommodationID:   r.AccommodationID,
		Name:              r.Name,
		NightlyPrice:      rate.String(),
		NightlyPriceMinor: rate.Minor(),
		Currency:          rate.Currency(),
		Capacity:          r.Capacity,
		TotalInventory:    r.TotalInventory,
		CreatedAt:         r.Now,
		UpdatedAt:         r.Now,
	}
}
