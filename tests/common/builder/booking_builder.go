//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID       uuid.UUID
	RoomTypeID   uuid.UUID
	RoomTypeName string
	RateMinor    int64
	Currency     string
	Capacity     int
	CheckIn      string
	CheckOut     string
	NumRooms     int
	NumGuests    int
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	Status       booking.Status
	Now          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:       uuid.New(),
		RoomTypeID:   uuid.New(),
		RoomTypeName: "Deluxe Double",
		RateMinor:    58000,
		Currency:     "usd",
		Capacity:     2,
		CheckIn:      "2030-06-10",
		CheckOut:     "2030-06-13",
		NumRooms:     2,
		NumGuests:    3,
		GuestName:    "Aiko Tanaka",
		GuestEmail:   "aiko@example.com",
		GuestPhone:   "+81-90-0000-0000",
		Status:       booking.StatusPending,
		Now:          time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRooms(rooms, guests int) *BookingBuilder {
	b.NumRooms = rooms
	b.NumGuests = guests
	return b
}

// Build methods
func (b *BookingBuilder) BuildRoomTypeSpec() booking.RoomTypeSpec {
	rate, _ := money.FromMinor(b.RateMinor, b.Currency)
	return booking.RoomTypeSpec{ID: b.RoomTypeID, NightlyRate: rate, Capacity: b.Capacity}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.ParseStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	guest, err := booking.NewGuestContact(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	services := &booking.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: booking.NewNightlyRateCalculator(),
	}
	return booking.NewBooking(services, uuid.New(), b.BuildRoomTypeSpec(), b.UserID, period, b.NumRooms, b.NumGuests, guest)
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomTypeID: b.RoomTypeID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		NumRooms:   b.NumRooms,
		NumGuests:  b.NumGuests,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomTypeID: b.RoomTypeID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		NumRooms:   b.NumRooms,
		NumGuests:  b.NumGuests,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	period, _ := booking.ParseStayPeriod(b.CheckIn, b.CheckOut)
	rate, _ := money.FromMinor(b.RateMinor, b.Currency)
	total, _ := booking.NewNightlyRateCalculator().Compute(rate, period, b.NumRooms)
	return &queries.BookingView{
		ID:              uuid.New(),
		UserID:          b.UserID,
		RoomTypeID:      b.RoomTypeID,
		RoomTypeName:    b.RoomTypeName,
		AccommodationID: uuid.New(),
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          period.Nights(),
		NumRooms:        b.NumRooms,
		NumGuests:       b.NumGuests,
		TotalPrice:      total.String(),
		Currency:        b.Currency,
		Status:          b.Status.String(),
		PaymentStatus:   "pending",
		Guest: queries.GuestView{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
		},
		Payment: &queries.PaymentView{
			ID:            uuid.New(),
			Status:        "pending",
			TransactionID: "pi_sandbox_" + uuid.NewString(),
			Amount:        total.String(),
			Currency:      b.Currency,
			UpdatedAt:     b.Now,
		},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	view := b.BuildView()
	return &queries.BookingListItem{
		ID:            view.ID,
		RoomTypeID:    view.RoomTypeID,
		RoomTypeName:  view.RoomTypeName,
		CheckIn:       view.CheckIn,
		CheckOut:      view.CheckOut,
		NumRooms:      view.NumRooms,
		TotalPrice:    view.TotalPrice,
		Currency:      view.Currency,
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		CreatedAt:     view.CreatedAt,
	}
}
