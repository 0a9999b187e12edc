package queries

import (
	"time"

	"github.com/google/uuid"
)

type RoomTypeView struct {
	ID                uuid.UUID `json:"id"`
	AccommodationID   uuid.UUID `json:"accommodation_id"`
	Name              string    `json:"name"`
	NightlyPrice      string    `json:"nightly_price"`
	NightlyPriceMinor int64     `json:"nightly_price_minor"`
	Currency          string    `json:"currency"`
	Capacity          int       `json:"capacity"`
	TotalInventory    int       `json:"total_inventory"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type GuestView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingView dates are calendar dates in YYYY-MM-DD form.
type BookingView struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	RoomTypeID      uuid.UUID    `json:"room_type_id"`
	RoomTypeName    string       `json:"room_type_name"`
	AccommodationID uuid.UUID    `json:"accommodation_id"`
	CheckIn         string       `json:"check_in"`
	CheckOut        string       `json:"check_out"`
	Nights          int          `json:"nights"`
	NumRooms        int          `json:"num_rooms"`
	NumGuests       int          `json:"num_guests"`
	TotalPrice      string       `json:"total_price"`
	Currency        string       `json:"currency"`
	Status          string       `json:"status"`
	PaymentStatus   string       `json:"payment_status"`
	Guest           GuestView    `json:"guest"`
	Payment         *PaymentView `json:"payment,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	RoomTypeID    uuid.UUID `json:"room_type_id"`
	RoomTypeName  string    `json:"room_type_name"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	NumRooms      int       `json:"num_rooms"`
	TotalPrice    string    `json:"total_price"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AvailabilityView struct {
	RoomTypeID     uuid.UUID `json:"room_type_id"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Nights         int       `json:"nights"`
	RequestedRooms int       `json:"requested_rooms"`
	TotalInventory int       `json:"total_inventory"`
	Remaining      int       `json:"remaining"`
	Available      bool      `json:"available"`
	QuotedPrice    string    `json:"quoted_price"`
	Currency       string    `json:"currency"`
}
