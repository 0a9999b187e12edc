package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const createBookingEndpoint = "POST /api/bookings"

type CreateBookingRequest struct {
	RoomTypeID uuid.UUID `json:"roomTypeId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	NumRooms   int       `json:"numRooms"`
	NumGuests  int       `json:"numGuests"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestPhone string    `json:"guestPhone"`
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	PaymentHandle string
	TransactionID string
	TotalPrice    money.Money
	Status        booking.Status
	IsReplayed    bool
}

type PaymentOutcome string

const (
	OutcomeConfirmed        PaymentOutcome = "confirmed"
	OutcomeAlreadyConfirmed PaymentOutcome = "already_confirmed"
	OutcomeFailed           PaymentOutcome = "failed"
	OutcomeAlreadyFailed    PaymentOutcome = "already_failed"
	OutcomeProcessing       PaymentOutcome = "processing"
)

type PaymentResult struct {
	BookingID     uuid.UUID
	TransactionID string
	Outcome       PaymentOutcome
}

// PaymentEvents is the subset used by asynchronous payment channels (webhooks, queues).
type PaymentEvents interface {
	HandlePaymentSuccess(ctx context.Context, transactionID string) (*PaymentResult, error)
	HandlePaymentFailure(ctx context.Context, transactionID string) (*PaymentResult, error)
}

type BookingCommands interface {
	PaymentEvents
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*PaymentResult, error)
	RefundPayment(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
}

const defaultNotifyTimeout = 2 * time.Second

type BookingSettings struct {
	IdempotencyTTL time.Duration
	// NotifyTimeout bounds each notification send after commit.
	NotifyTimeout time.Duration
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier Notifier
	pricing  booking.PriceCalculator
	clock    clock.Clock
	settings BookingSettings
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier Notifier,
	pricing booking.PriceCalculator,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	if settings.NotifyTimeout <= 0 {
		settings.NotifyTimeout = defaultNotifyTimeout
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		pricing:  pricing,
		clock:    clk,
		settings: settings,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	period, guest, err := uc.validateRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(req)
	// fixed across retries: the provider intent is keyed on it
	bookingID := uuid.New()

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		if idempotencyKey != nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, userID, requestHash)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		created, err := uc.reserve(ctx, tx, bookingID, req, userID, period, guest)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *idempotencyKey, userID, created.BookingID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		uc.notify(ctx, userID, NotificationBookingCreated, fmt.Sprintf(
			"Booking %s for %s is awaiting payment of %s %s",
			result.BookingID, period, result.TotalPrice, result.TotalPrice.Currency(),
		))
	}
	return result, nil
}

// validateRequest runs every check that needs no lock, in the order callers
// see them: dates, counts, guest contact, then room type existence and capacity.
func (uc *bookingUseCaseImpl) validateRequest(
	ctx context.Context,
	req CreateBookingRequest,
) (booking.StayPeriod, booking.GuestContact, error) {
	period, err := booking.ParseStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return booking.StayPeriod{}, booking.GuestContact{}, errs.Mark(err, ErrValidation)
	}
	if err := booking.ValidateOccupancy(0, req.NumRooms, req.NumGuests); err != nil {
		return booking.StayPeriod{}, booking.GuestContact{}, errs.Mark(err, ErrValidation)
	}
	guest, err := booking.NewGuestContact(req.GuestName, req.GuestEmail, req.GuestPhone)
	if err != nil {
		return booking.StayPeriod{}, booking.GuestContact{}, errs.Mark(err, ErrValidation)
	}

	rt, err := uc.uow.CommandReads().RoomTypeByID(ctx, req.RoomTypeID)
	if err != nil {
		return booking.StayPeriod{}, booking.GuestContact{}, lookupErr(err, ErrRoomTypeNotFound)
	}
	if err := booking.ValidateOccupancy(rt.Capacity(), req.NumRooms, req.NumGuests); err != nil {
		return booking.StayPeriod{}, booking.GuestContact{}, errs.Mark(err, ErrValidation)
	}
	return period, guest, nil
}

// reserve locks the room type, re-checks availability and writes the booking and
// its payment. It must run inside the transaction that commits them.
func (uc *bookingUseCaseImpl) reserve(
	ctx context.Context,
	tx shared.Tx,
	bookingID uuid.UUID,
	req CreateBookingRequest,
	userID uuid.UUID,
	period booking.StayPeriod,
	guest booking.GuestContact,
) (*CreateBookingResult, error) {
	rt, err := tx.RoomTypes().LockByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, lookupErr(err, ErrRoomTypeNotFound)
	}

	holds, err := tx.RoomTypes().OverlappingHolds(ctx, rt.ID(), period)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	availability := inventory.Tally(rt.TotalInventory(), period, req.NumRooms, holds)
	if !availability.Available() {
		return nil, errs.Wrapf(ErrCapacityExceeded, "requested %d, remaining %d", req.NumRooms, max(availability.Remaining(), 0))
	}

	services := &booking.Services{Clock: uc.clock, PriceCalculator: uc.pricing}
	b, err := booking.NewBooking(services, bookingID, rt.Spec(), userID, period, req.NumRooms, req.NumGuests, guest)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := tx.Bookings().Create(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	intent, err := uc.gateway.CreateIntent(ctx, b.TotalPrice(), IntentReference{BookingID: b.ID(), UserID: userID})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	p, err := payment.NewPayment(b.ID(), userID, b.TotalPrice(), intent, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	if err := tx.Payments().Create(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		BookingID:     b.ID(),
		PaymentHandle: p.Handle(),
		TransactionID: p.TransactionID(),
		TotalPrice:    b.TotalPrice(),
		Status:        b.Status(),
	}, nil
}

// claimIdempotencyKey returns a non-nil result when the key belongs to an
// already completed request with the same body.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
) (*CreateBookingResult, error) {
	now := uc.clock.Now()
	record := shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    createBookingEndpoint,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		ExpiresAt:   now.Add(uc.settings.IdempotencyTTL),
	}

	inserted, err := tx.Idempotency().TryInsert(ctx, record)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().FindForUpdate(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.IsExpired(now) {
		if err := tx.Idempotency().Reclaim(ctx, record); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, nil
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed idempotency record has no booking"), ErrDatabaseOperationFailed)
		}
		return uc.replay(ctx, tx, *existing.ResultBookingID)
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("unknown idempotency status %q", existing.Status)
	}
}

func (uc *bookingUseCaseImpl) replay(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*CreateBookingResult, error) {
	b, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrBookingNotFound)
	}
	p, err := tx.Reads().PaymentByBookingID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrPaymentNotFound)
	}
	return &CreateBookingResult{
		BookingID:     b.ID(),
		PaymentHandle: p.Handle(),
		TransactionID: p.TransactionID(),
		TotalPrice:    b.TotalPrice(),
		Status:        b.Status(),
		IsReplayed:    true,
	}, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().GetForUpdate(ctx, bookingID)
		if err != nil {
			return lookupErr(err, ErrBookingNotFound)
		}
		if !actor.CanAccess(b.UserID()) {
			return ErrForbidden
		}
		if err := b.Cancel(uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return err
	}

	uc.notify(ctx, cancelled.UserID(), NotificationBookingCancelled,
		fmt.Sprintf("Booking %s for %s was cancelled", cancelled.ID(), cancelled.Period()))
	return nil
}

func (uc *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*PaymentResult, error) {
	reads := uc.uow.CommandReads()
	b, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrBookingNotFound)
	}
	if !actor.CanAccess(b.UserID()) {
		return nil, ErrForbidden
	}
	p, err := reads.PaymentByBookingID(ctx, bookingID)
	if err != nil {
		return nil, lookupErr(err, ErrPaymentNotFound)
	}

	switch p.Status() {
	case payment.StatusPaid, payment.StatusRefunded:
		return &PaymentResult{BookingID: b.ID(), TransactionID: p.TransactionID(), Outcome: OutcomeAlreadyConfirmed}, nil
	case payment.StatusFailed:
		return nil, errs.Wrapf(ErrPaymentNotFound, "payment is %s", p.Status())
	case payment.StatusPending:
	}
	if b.Status() == booking.StatusCancelled {
		return nil, errs.Wrapf(ErrInvalidState, "booking is %s", b.Status())
	}

	if err := uc.gateway.Confirm(ctx, p.TransactionID()); err != nil {
		if errs.Is(err, ErrPaymentProcessing) {
			// settled later by the webhook or the payment event consumer
			return &PaymentResult{BookingID: b.ID(), TransactionID: p.TransactionID(), Outcome: OutcomeProcessing}, nil
		}
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	return uc.HandlePaymentSuccess(ctx, p.TransactionID())
}

func (uc *bookingUseCaseImpl) HandlePaymentSuccess(ctx context.Context, transactionID string) (*PaymentResult, error) {
	found, err := uc.uow.CommandReads().PaymentByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupErr(err, ErrPaymentNotFound)
	}

	var (
		result *PaymentResult
		owner  uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, p, err := lockBookingAndPayment(ctx, tx, found.BookingID())
		if err != nil {
			return err
		}
		owner = b.UserID()
		result = &PaymentResult{BookingID: b.ID(), TransactionID: p.TransactionID()}

		switch p.Status() {
		case payment.StatusPaid, payment.StatusRefunded:
			result.Outcome = OutcomeAlreadyConfirmed
			return nil
		case payment.StatusFailed:
			return errs.Wrapf(ErrPaymentNotFound, "payment %s is %s", transactionID, p.Status())
		case payment.StatusPending:
		}

		now := uc.clock.Now()
		if err := b.ConfirmPayment(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := p.MarkPaid(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.Outcome = OutcomeConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == OutcomeConfirmed {
		uc.notify(ctx, owner, NotificationBookingConfirmed,
			fmt.Sprintf("Payment received, booking %s is confirmed", result.BookingID))
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) HandlePaymentFailure(ctx context.Context, transactionID string) (*PaymentResult, error) {
	found, err := uc.uow.CommandReads().PaymentByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupErr(err, ErrPaymentNotFound)
	}

	var (
		result *PaymentResult
		owner  uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, p, err := lockBookingAndPayment(ctx, tx, found.BookingID())
		if err != nil {
			return err
		}
		owner = b.UserID()
		result = &PaymentResult{BookingID: b.ID(), TransactionID: p.TransactionID()}

		switch p.Status() {
		case payment.StatusFailed:
			result.Outcome = OutcomeAlreadyFailed
			return nil
		case payment.StatusPaid, payment.StatusRefunded:
			return errs.Wrapf(ErrInvalidState, "payment %s is already %s", transactionID, p.Status())
		case payment.StatusPending:
		}

		now := uc.clock.Now()
		if err := b.FailPayment(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := p.MarkFailed(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.Outcome = OutcomeFailed
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome == OutcomeFailed {
		uc.notify(ctx, owner, NotificationPaymentFailed,
			fmt.Sprintf("Payment for booking %s failed and the booking was released", result.BookingID))
	}
	return result, nil
}

// RefundPayment marks the payment refunded and asks the provider to refund it.
// A provider error rolls the status change back.
func (uc *bookingUseCaseImpl) RefundPayment(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	var owner uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, p, err := lockBookingAndPayment(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		owner = b.UserID()

		now := uc.clock.Now()
		if err := p.MarkRefunded(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := b.MarkRefunded(now); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := uc.gateway.Refund(ctx, p.TransactionID()); err != nil {
			return errs.Mark(err, ErrPaymentGateway)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notify(ctx, owner, NotificationPaymentRefunded,
		fmt.Sprintf("Payment for booking %s was refunded", bookingID))
	return nil
}

func (uc *bookingUseCaseImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	if !actor.Role.AtLeast(user.RoleStaff) {
		return ErrForbidden
	}

	var owner uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().GetForUpdate(ctx, bookingID)
		if err != nil {
			return lookupErr(err, ErrBookingNotFound)
		}
		owner = b.UserID()
		if err := b.Complete(uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.notify(ctx, owner, NotificationBookingCompleted,
		fmt.Sprintf("Booking %s is completed, thank you for staying with us", bookingID))
	return nil
}

// lockBookingAndPayment always locks the booking row before the payment row.
func lockBookingAndPayment(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, *payment.Payment, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, bookingID)
	if err != nil {
		return nil, nil, lookupErr(err, ErrBookingNotFound)
	}
	p, err := tx.Payments().GetByBookingIDForUpdate(ctx, bookingID)
	if err != nil {
		return nil, nil, lookupErr(err, ErrPaymentNotFound)
	}
	return b, p, nil
}

// notify runs after commit. Delivery failures never reach the caller, and a
// slow notifier holds the response for at most NotifyTimeout.
func (uc *bookingUseCaseImpl) notify(ctx context.Context, userID uuid.UUID, kind NotificationType, message string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.NotifyTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- uc.notifier.Send(sendCtx, userID, kind, message) }()

	var err error
	select {
	case err = <-done:
	case <-sendCtx.Done():
		err = errs.Wrap(sendCtx.Err(), "notification send timed out")
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to send notification",
			"type", string(kind),
			"user_id", userID.String(),
			"error", err.Error())
	}
}

func lookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
