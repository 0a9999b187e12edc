package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("invalid payment status transition")
	ErrMissingTransactionID = errors.New("payment intent has no transaction id")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
)

// Intent is what the payment provider hands back when a charge is initiated.
// Handle is opaque to the server and is passed to the client (e.g. a client secret).
type Intent struct {
	Handle     string
	ExternalID string
}

type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	userID        uuid.UUID
	amount        money.Money
	status        Status
	transactionID string
	handle        string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPayment(bookingID, userID uuid.UUID, amount money.Money, intent Intent, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	txID := strings.TrimSpace(intent.ExternalID)
	if txID == "" {
		return nil, ErrMissingTransactionID
	}

	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		userID:        userID,
		amount:        amount,
		status:        StatusPending,
		transactionID: txID,
		handle:        intent.Handle,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPayment(
	id, bookingID, userID uuid.UUID,
	amount money.Money,
	status Status,
	transactionID, handle string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		userID:        userID,
		amount:        amount,
		status:        status,
		transactionID: transactionID,
		handle:        handle,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) MarkPaid(now time.Time) error {
	return p.transition(StatusPaid, now)
}

func (p *Payment) MarkFailed(now time.Time) error {
	return p.transition(StatusFailed, now)
}

func (p *Payment) MarkRefunded(now time.Time) error {
	return p.transition(StatusRefunded, now)
}

func (p *Payment) IsPending() bool {
	return p.status == StatusPending
}

func (p *Payment) transition(next Status, now time.Time) error {
	if !p.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.status, next)
	}
	p.status = next
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) UserID() uuid.UUID     { return p.userID }
func (p *Payment) Amount() money.Money   { return p.amount }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Handle() string        { return p.handle }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time  { return p.updatedAt }
