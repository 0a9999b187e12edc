package payment

import (
	"context"
	"strings"
	"sync"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const sandboxPrefix = "pi_sandbox_"

var (
	ErrUnknownIntent   = errs.New("unknown payment intent")
	ErrAlreadyRefunded = errs.New("payment intent already refunded")
)

type sandboxState int

const (
	sandboxCreated sandboxState = iota
	sandboxSucceeded
	sandboxRefunded
)

// SandboxGateway is an in-process provider for local runs and tests.
// Every confirmation succeeds. Intents created before a restart are still
// accepted as long as they carry the sandbox prefix. Like the Stripe gateway,
// a booking id yields one intent however often it is requested.
type SandboxGateway struct {
	mu        sync.Mutex
	intents   map[string]sandboxState
	byBooking map[uuid.UUID]string
}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{
		intents:   make(map[string]sandboxState),
		byBooking: make(map[uuid.UUID]string),
	}
}

func (g *SandboxGateway) CreateIntent(_ context.Context, _ money.Money, ref commands.IntentReference) (payment.Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.byBooking[ref.BookingID]
	if !ok {
		id = sandboxPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
		g.intents[id] = sandboxCreated
		if ref.BookingID != uuid.Nil {
			g.byBooking[ref.BookingID] = id
		}
	}

	return payment.Intent{Handle: id + "_secret", ExternalID: id}, nil
}

func (g *SandboxGateway) Confirm(_ context.Context, externalID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := g.lookup(externalID)
	if err != nil {
		return err
	}
	if state == sandboxCreated {
		g.intents[externalID] = sandboxSucceeded
	}
	return nil
}

func (g *SandboxGateway) Refund(_ context.Context, externalID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := g.lookup(externalID)
	if err != nil {
		return err
	}
	if state == sandboxRefunded {
		return errs.Wrapf(ErrAlreadyRefunded, "intent %s", externalID)
	}
	g.intents[externalID] = sandboxRefunded
	return nil
}

// caller holds g.mu
func (g *SandboxGateway) lookup(externalID string) (sandboxState, error) {
	if state, ok := g.intents[externalID]; ok {
		return state, nil
	}
	if !strings.HasPrefix(externalID, sandboxPrefix) {
		return 0, errs.Wrapf(ErrUnknownIntent, "intent %s", externalID)
	}
	return sandboxCreated, nil
}
