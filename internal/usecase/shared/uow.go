package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/payment"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: READ COMMITTED write transaction, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: single-statement reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	RoomTypes() RoomTypeRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	RoomTypeByID(ctx context.Context, id uuid.UUID) (*inventory.RoomType, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
	PaymentByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// GetForUpdate row-locks the booking until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	GetByBookingIDForUpdate(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
	Update(ctx context.Context, p *payment.Payment) error
}

type RoomTypeRepository interface {
	// LockByID takes the room type row lock that serializes bookings of that type.
	LockByID(ctx context.Context, id uuid.UUID) (*inventory.RoomType, error)
	// OverlappingHolds returns the non-cancelled bookings overlapping period.
	OverlappingHolds(ctx context.Context, roomTypeID uuid.UUID, period booking.StayPeriod) ([]inventory.Hold, error)
	Create(ctx context.Context, rt *inventory.RoomType) error
	Update(ctx context.Context, rt *inventory.RoomType) error
}

type IdempotencyRepository interface {
	// TryInsert claims key for userID. It reports false when the key already exists.
	TryInsert(ctx context.Context, rec IdempotencyRecord) (bool, error)
	FindForUpdate(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	// Reclaim takes over an expired record for a new request.
	Reclaim(ctx context.Context, rec IdempotencyRecord) error
	Complete(ctx context.Context, key, userID, bookingID uuid.UUID) error
}
