package booking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrInvalidStayPeriod      = errors.New("check-out date must be after check-in date")
	ErrInvalidDate            = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRoomCount       = errors.New("number of rooms must be between 1 and 2147483647")
	ErrInvalidGuestCount      = errors.New("number of guests must be between 1 and 2147483647")
	ErrOccupancyExceeded      = errors.New("number of guests exceeds room capacity")
	ErrInvalidGuestContact    = errors.New("guest name and a valid email are required")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")
	ErrNegativePrice          = errors.New("price cannot be negative")
)

// RoomTypeSpec is the part of a room type a booking is priced and checked against.
type RoomTypeSpec struct {
	ID          uuid.UUID
	NightlyRate money.Money
	Capacity    int
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	roomTypeID    uuid.UUID
	period        StayPeriod
	numRooms      int
	numGuests     int
	totalPrice    money.Money
	status        Status
	paymentStatus payment.Status
	guest         GuestContact
	createdAt     time.Time
	updatedAt     time.Time
}

// MaxCount bounds every room, guest and inventory count.
const MaxCount = math.MaxInt32

// ValidateOccupancy checks room and guest counts against a room type's capacity
// (guests per room). A capacity of zero or less disables the guest ceiling.
func ValidateOccupancy(capacity, rooms, guests int) error {
	if rooms < 1 || rooms > MaxCount {
		return ErrInvalidRoomCount
	}
	if guests < 1 || guests > MaxCount {
		return ErrInvalidGuestCount
	}
	if capacity > 0 && guests > capacity*rooms {
		return ErrOccupancyExceeded
	}
	return nil
}

// NewBooking takes the id from the caller so a retried transaction keeps it.
func NewBooking(
	services *Services,
	id uuid.UUID,
	roomType RoomTypeSpec,
	userID uuid.UUID,
	period StayPeriod,
	numRooms, numGuests int,
	guest GuestContact,
) (*Booking, error) {
	if err := ValidateOccupancy(roomType.Capacity, numRooms, numGuests); err != nil {
		return nil, err
	}

	total, err := services.PriceCalculator.Compute(roomType.NightlyRate, period, numRooms)
	if err != nil {
		return nil, err
	}
	if total.Minor() < 0 {
		return nil, ErrNegativePrice
	}

	now := services.Clock.Now()
	return &Booking{
		id:            id,
		userID:        userID,
		roomTypeID:    roomType.ID,
		period:        period,
		numRooms:      numRooms,
		numGuests:     numGuests,
		totalPrice:    total,
		status:        StatusPending,
		paymentStatus: payment.StatusPending,
		guest:         guest,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, userID, roomTypeID uuid.UUID,
	period StayPeriod,
	numRooms, numGuests int,
	totalPrice money.Money,
	status Status,
	paymentStatus payment.Status,
	guest GuestContact,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		roomTypeID:    roomTypeID,
		period:        period,
		numRooms:      numRooms,
		numGuests:     numGuests,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		guest:         guest,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel is allowed from pending and confirmed. The payment is left as it is;
// refunds are a separate action.
func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCancelled, now)
}

// ConfirmPayment moves a pending booking with a pending payment to confirmed/paid.
func (b *Booking) ConfirmPayment(now time.Time) error {
	if !b.paymentStatus.CanTransitionTo(payment.StatusPaid) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidStateTransition, b.paymentStatus, payment.StatusPaid)
	}
	if err := b.transition(StatusConfirmed, now); err != nil {
		return err
	}
	b.paymentStatus = payment.StatusPaid
	return nil
}

// FailPayment records a declined payment. A booking still pending is cancelled
// with it so that it stops holding inventory.
func (b *Booking) FailPayment(now time.Time) error {
	if !b.paymentStatus.CanTransitionTo(payment.StatusFailed) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidStateTransition, b.paymentStatus, payment.StatusFailed)
	}
	if b.status == StatusPending {
		if err := b.transition(StatusCancelled, now); err != nil {
			return err
		}
	}
	b.paymentStatus = payment.StatusFailed
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkRefunded(now time.Time) error {
	if !b.paymentStatus.CanTransitionTo(payment.StatusRefunded) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidStateTransition, b.paymentStatus, payment.StatusRefunded)
	}
	b.paymentStatus = payment.StatusRefunded
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(now time.Time) error {
	return b.transition(StatusCompleted, now)
}

func (b *Booking) transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, b.status, next)
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) RoomTypeID() uuid.UUID         { return b.roomTypeID }
func (b *Booking) Period() StayPeriod            { return b.period }
func (b *Booking) NumRooms() int                 { return b.numRooms }
func (b *Booking) NumGuests() int                { return b.numGuests }
func (b *Booking) TotalPrice() money.Money       { return b.totalPrice }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() payment.Status { return b.paymentStatus }
func (b *Booking) Guest() GuestContact           { return b.guest }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
