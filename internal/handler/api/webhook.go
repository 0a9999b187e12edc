package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	events commands.PaymentEvents
	secret string
}

func NewWebhookHandler(events commands.PaymentEvents, secret string) *WebhookHandler {
	return &WebhookHandler{events: events, secret: secret}
}

// @Summary Stripe webhook
// @Description Applies payment_intent.succeeded and payment_intent.payment_failed events
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	ctx := c.Request.Context()
	if h.secret == "" {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, nil, "Webhook is not configured", nil)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook payload", nil)
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, c.GetHeader("Stripe-Signature"), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		slog.WarnContext(ctx, "stripe webhook signature verification failed", "error", err)
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook signature verification failed", nil)
		return
	}

	var apply func(context.Context, string) (*commands.PaymentResult, error)
	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		apply = h.events.HandlePaymentSuccess
	case stripe.EventTypePaymentIntentPaymentFailed:
		apply = h.events.HandlePaymentFailure
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment intent payload", nil)
		return
	}

	result, err := apply(ctx, intent.ID)
	if err != nil {
		// Stripe retries anything that is not 2xx, so only transient failures return an error.
		if statusFor(err) < http.StatusInternalServerError {
			slog.WarnContext(ctx, "stripe event not applied", "event_id", event.ID, "type", event.Type,
				"intent_id", intent.ID, "error", err)
			c.JSON(http.StatusOK, gin.H{"received": true, "applied": false})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	slog.InfoContext(ctx, "stripe event applied", "event_id", event.ID, "type", event.Type,
		"booking_id", result.BookingID, "outcome", result.Outcome)
	c.JSON(http.StatusOK, gin.H{"received": true, "applied": true, "outcome": result.Outcome})
}

