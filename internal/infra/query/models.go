package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Accommodation struct {
	ID        uuid.UUID
	Name      string
	City      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type RoomType struct {
	ID                uuid.UUID
	AccommodationID   uuid.UUID
	Name              string
	NightlyPriceMinor int64
	Currency          string
	Capacity          int32
	TotalInventory    int32
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type Booking struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomTypeID      uuid.UUID
	CheckInDate     pgtype.Date
	CheckOutDate    pgtype.Date
	NumRooms        int32
	NumGuests       int32
	TotalPriceMinor int64
	Currency        string
	Status          string
	PaymentStatus   string
	GuestName       string
	GuestEmail      string
	GuestPhone      pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Payment struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	UserID        uuid.UUID
	AmountMinor   int64
	Currency      string
	Status        string
	TransactionID string
	ClientHandle  pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}
