package payment

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Confirm(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeGateway struct {
	intents intentAPI
	refunds refundAPI
	logger  *slog.Logger
}

func NewStripeGateway(secretKey string, logger *slog.Logger) *StripeGateway {
	sc := client.New(secretKey, nil)
	return &StripeGateway{
		intents: sc.PaymentIntents,
		refunds: sc.Refunds,
		logger:  logger,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount money.Money, ref commands.IntentReference) (payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount.Minor()),
		Currency: stripe.String(amount.Currency()),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", ref.BookingID.String())
	params.AddMetadata("user_id", ref.UserID.String())
	params.SetIdempotencyKey("booking-" + ref.BookingID.String())

	pi, err := g.intents.New(params)
	if err != nil {
		return payment.Intent{}, errs.Wrap(err, "failed to create stripe payment intent")
	}

	g.logger.InfoContext(ctx, "stripe payment intent created",
		"intent_id", pi.ID, "booking_id", ref.BookingID, "amount", amount.String(), "currency", amount.Currency())

	return payment.Intent{Handle: pi.ClientSecret, ExternalID: pi.ID}, nil
}

// Confirm is a no-op for intents that already succeeded. Only a succeeded
// intent counts as paid; a processing one reports ErrPaymentProcessing.
func (g *StripeGateway) Confirm(ctx context.Context, externalID string) error {
	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx
	pi, err := g.intents.Get(externalID, getParams)
	if err != nil {
		return errs.Wrapf(err, "failed to fetch stripe payment intent %s", externalID)
	}
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return nil
	case stripe.PaymentIntentStatusProcessing:
		return processing(externalID)
	}

	confirmParams := &stripe.PaymentIntentConfirmParams{}
	confirmParams.Context = ctx
	pi, err = g.intents.Confirm(externalID, confirmParams)
	if err != nil {
		return errs.Wrapf(err, "failed to confirm stripe payment intent %s", externalID)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return nil
	case stripe.PaymentIntentStatusProcessing:
		return processing(externalID)
	default:
		return errs.Newf("stripe payment intent %s is %s after confirmation", externalID, pi.Status)
	}
}

func processing(externalID string) error {
	return errs.Mark(errs.Newf("stripe payment intent %s is processing", externalID), commands.ErrPaymentProcessing)
}

func (g *StripeGateway) Refund(ctx context.Context, externalID string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(externalID),
	}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + externalID)

	r, err := g.refunds.New(params)
	if err != nil {
		return errs.Wrapf(err, "failed to refund stripe payment intent %s", externalID)
	}
	if r.Status == stripe.RefundStatusFailed || r.Status == stripe.RefundStatusCanceled {
		return errs.Newf("stripe refund %s for %s ended as %s", r.ID, externalID, r.Status)
	}

	g.logger.InfoContext(ctx, "stripe refund issued", "refund_id", r.ID, "intent_id", externalID)
	return nil
}
