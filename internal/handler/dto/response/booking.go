package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	Status        string    `json:"status"`
	TotalPrice    string    `json:"totalPrice"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transactionId"`
	PaymentHandle string    `json:"paymentHandle"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:     r.BookingID,
		Status:        r.Status.String(),
		TotalPrice:    r.TotalPrice.String(),
		Currency:      r.TotalPrice.Currency(),
		TransactionID: r.TransactionID,
		PaymentHandle: r.PaymentHandle,
	}
}

type GuestResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	RoomTypeID      uuid.UUID        `json:"roomTypeId"`
	RoomTypeName    string           `json:"roomTypeName"`
	AccommodationID uuid.UUID        `json:"accommodationId"`
	CheckIn         string           `json:"checkIn"`
	CheckOut        string           `json:"checkOut"`
	Nights          int              `json:"nights"`
	NumRooms        int              `json:"numRooms"`
	NumGuests       int              `json:"numGuests"`
	TotalPrice      string           `json:"totalPrice"`
	Currency        string           `json:"currency"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`
	Guest           GuestResponse    `json:"guest" copier:"-"`
	Payment         *PaymentResponse `json:"payment,omitempty" copier:"-"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Guest = GuestResponse(v.Guest)
	if v.Payment != nil {
		var p PaymentResponse
		if err := copier.Copy(&p, v.Payment); err != nil {
			return nil, err
		}
		res.Payment = &p
	}
	return &res, nil
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomTypeID    uuid.UUID `json:"roomTypeId"`
	RoomTypeName  string    `json:"roomTypeName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	NumRooms      int       `json:"numRooms"`
	TotalPrice    string    `json:"totalPrice"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, 0, len(items))}
	if len(items) > 0 {
		if err := copier.Copy(&res.Items, &items); err != nil {
			return nil, err
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

type PaymentResultResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	TransactionID string    `json:"transactionId"`
	Outcome       string    `json:"outcome"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		BookingID:     r.BookingID,
		TransactionID: r.TransactionID,
		Outcome:       string(r.Outcome),
	}
}
