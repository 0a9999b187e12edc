//go:build unit

package payment_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	amount, _ := money.FromMinor(348000, "usd")
	intent := payment.Intent{Handle: "pi_1_secret_x", ExternalID: " pi_1 "}

	t.Run("starts pending", func(t *testing.T) {
		p, err := payment.NewPayment(uuid.New(), uuid.New(), amount, intent, now)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, "pi_1", p.TransactionID())
		assert.Equal(t, "pi_1_secret_x", p.Handle())
		assert.True(t, p.IsPending())
	})

	t.Run("zero amount", func(t *testing.T) {
		zero, _ := money.Zero("usd")
		_, err := payment.NewPayment(uuid.New(), uuid.New(), zero, intent, now)
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("intent without id", func(t *testing.T) {
		_, err := payment.NewPayment(uuid.New(), uuid.New(), amount, payment.Intent{Handle: "h"}, now)
		assert.ErrorIs(t, err, payment.ErrMissingTransactionID)
	})
}

func TestPaymentTransitions(t *testing.T) {
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	amount, _ := money.FromMinor(1000, "usd")
	newPayment := func(t *testing.T) *payment.Payment {
		t.Helper()
		p, err := payment.NewPayment(uuid.New(), uuid.New(), amount, payment.Intent{ExternalID: "pi_x"}, now)
		require.NoError(t, err)
		return p
	}

	t.Run("paid then refunded", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkPaid(now))
		assert.ErrorIs(t, p.MarkPaid(now), payment.ErrInvalidTransition)
		assert.ErrorIs(t, p.MarkFailed(now), payment.ErrInvalidTransition)
		require.NoError(t, p.MarkRefunded(now.Add(time.Hour)))
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.Equal(t, now.Add(time.Hour), p.UpdatedAt())
	})

	t.Run("failed is final", func(t *testing.T) {
		p := newPayment(t)
		require.NoError(t, p.MarkFailed(now))
		assert.ErrorIs(t, p.MarkPaid(now), payment.ErrInvalidTransition)
		assert.ErrorIs(t, p.MarkRefunded(now), payment.ErrInvalidTransition)
	})

	t.Run("pending cannot be refunded", func(t *testing.T) {
		assert.ErrorIs(t, newPayment(t).MarkRefunded(now), payment.ErrInvalidTransition)
	})

	_, err := payment.ParseStatus("void")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}
