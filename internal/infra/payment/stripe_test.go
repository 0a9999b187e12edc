//go:build unit

package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

type fakeIntents struct {
	created   *stripe.PaymentIntentParams
	status    stripe.PaymentIntentStatus
	confirmTo stripe.PaymentIntentStatus
	confirmed int
	err       error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = params
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, nil
}

func (f *fakeIntents) Get(id string, _ *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return &stripe.PaymentIntent{ID: id, Status: f.status}, nil
}

func (f *fakeIntents) Confirm(id string, _ *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	f.confirmed++
	f.status = stripe.PaymentIntentStatusSucceeded
	if f.confirmTo != "" {
		f.status = f.confirmTo
	}
	return &stripe.PaymentIntent{ID: id, Status: f.status}, nil
}

type fakeRefunds struct {
	params *stripe.RefundParams
	status stripe.RefundStatus
}

func (f *fakeRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	f.params = params
	return &stripe.Refund{ID: "re_1", Status: f.status}, nil
}

func newTestGateway(intents *fakeIntents, refunds *fakeRefunds) *StripeGateway {
	return &StripeGateway{
		intents: intents,
		refunds: refunds,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	intents := &fakeIntents{}
	g := newTestGateway(intents, &fakeRefunds{})
	amount, err := money.FromMinor(348000, "usd")
	require.NoError(t, err)
	bookingID := uuid.New()

	intent, err := g.CreateIntent(context.Background(), amount, commands.IntentReference{BookingID: bookingID, UserID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ExternalID)
	assert.Equal(t, "pi_123_secret_abc", intent.Handle)
	require.NotNil(t, intents.created)
	assert.Equal(t, int64(348000), *intents.created.Amount)
	assert.Equal(t, "usd", *intents.created.Currency)
	assert.Equal(t, bookingID.String(), intents.created.Metadata["booking_id"])
}

func TestStripeGateway_CreateIntentError(t *testing.T) {
	g := newTestGateway(&fakeIntents{err: errors.New("card_declined")}, &fakeRefunds{})
	amount, err := money.FromMinor(100, "usd")
	require.NoError(t, err)

	_, err = g.CreateIntent(context.Background(), amount, commands.IntentReference{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_declined")
}

func TestStripeGateway_ConfirmSkipsSucceededIntent(t *testing.T) {
	intents := &fakeIntents{status: stripe.PaymentIntentStatusSucceeded}
	g := newTestGateway(intents, &fakeRefunds{})

	require.NoError(t, g.Confirm(context.Background(), "pi_123"))
	assert.Equal(t, 0, intents.confirmed)
}

func TestStripeGateway_ConfirmPendingIntent(t *testing.T) {
	intents := &fakeIntents{status: stripe.PaymentIntentStatusRequiresConfirmation}
	g := newTestGateway(intents, &fakeRefunds{})

	require.NoError(t, g.Confirm(context.Background(), "pi_123"))
	assert.Equal(t, 1, intents.confirmed)
}

func TestStripeGateway_ConfirmProcessingIsNotPaid(t *testing.T) {
	t.Run("processing after confirmation", func(t *testing.T) {
		intents := &fakeIntents{
			status:    stripe.PaymentIntentStatusRequiresConfirmation,
			confirmTo: stripe.PaymentIntentStatusProcessing,
		}
		g := newTestGateway(intents, &fakeRefunds{})

		err := g.Confirm(context.Background(), "pi_123")
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrPaymentProcessing))
		assert.Equal(t, 1, intents.confirmed)
	})

	t.Run("already processing is not confirmed again", func(t *testing.T) {
		intents := &fakeIntents{status: stripe.PaymentIntentStatusProcessing}
		g := newTestGateway(intents, &fakeRefunds{})

		err := g.Confirm(context.Background(), "pi_123")
		assert.True(t, errs.Is(err, commands.ErrPaymentProcessing))
		assert.Equal(t, 0, intents.confirmed)
	})

	t.Run("requires action is a provider error", func(t *testing.T) {
		intents := &fakeIntents{
			status:    stripe.PaymentIntentStatusRequiresConfirmation,
			confirmTo: stripe.PaymentIntentStatusRequiresAction,
		}
		g := newTestGateway(intents, &fakeRefunds{})

		err := g.Confirm(context.Background(), "pi_123")
		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrPaymentProcessing))
	})
}

func TestStripeGateway_Refund(t *testing.T) {
	refunds := &fakeRefunds{status: stripe.RefundStatusSucceeded}
	g := newTestGateway(&fakeIntents{}, refunds)

	require.NoError(t, g.Refund(context.Background(), "pi_123"))
	require.NotNil(t, refunds.params)
	assert.Equal(t, "pi_123", *refunds.params.PaymentIntent)

	refunds.status = stripe.RefundStatusFailed
	assert.Error(t, g.Refund(context.Background(), "pi_123"))
}
