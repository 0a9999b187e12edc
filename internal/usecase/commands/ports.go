package commands

import (
	"context"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"

	"github.com/google/uuid"
)

// IntentReference is attached to the provider-side intent as metadata.
type IntentReference struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount money.Money, ref IntentReference) (payment.Intent, error)
	// Confirm must be safe to call for an intent that already succeeded.
	// An intent accepted but not yet settled yields ErrPaymentProcessing.
	Confirm(ctx context.Context, externalID string) error
	Refund(ctx context.Context, externalID string) error
}

type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingCompleted NotificationType = "booking_completed"
	NotificationPaymentRefunded  NotificationType = "payment_refunded"
	NotificationPaymentFailed    NotificationType = "payment_failed"
)

type Notifier interface {
	Send(ctx context.Context, userID uuid.UUID, kind NotificationType, message string) error
}

// ListingCache is the write-side view of the room type listing cache.
type ListingCache interface {
	Invalidate(ctx context.Context, accommodationID uuid.UUID) error
}
