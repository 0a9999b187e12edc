//go:build unit

package payment_test

import (
	"context"
	"strings"
	"testing"

	"hotel-booking/internal/domain/money"
	infrapayment "hotel-booking/internal/infra/payment"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGateway_Lifecycle(t *testing.T) {
	ctx := context.Background()
	g := infrapayment.NewSandboxGateway()
	amount, err := money.FromMinor(348000, "usd")
	require.NoError(t, err)

	intent, err := g.CreateIntent(ctx, amount, commands.IntentReference{BookingID: uuid.New(), UserID: uuid.New()})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(intent.ExternalID, "pi_sandbox_"))
	assert.NotEmpty(t, intent.Handle)

	require.NoError(t, g.Confirm(ctx, intent.ExternalID))
	require.NoError(t, g.Confirm(ctx, intent.ExternalID), "confirming twice is a no-op")

	require.NoError(t, g.Refund(ctx, intent.ExternalID))
	err = g.Refund(ctx, intent.ExternalID)
	assert.ErrorIs(t, err, infrapayment.ErrAlreadyRefunded)
}

func TestSandboxGateway_DistinctIntents(t *testing.T) {
	ctx := context.Background()
	g := infrapayment.NewSandboxGateway()
	amount, err := money.FromMinor(100, "usd")
	require.NoError(t, err)

	a, err := g.CreateIntent(ctx, amount, commands.IntentReference{})
	require.NoError(t, err)
	b, err := g.CreateIntent(ctx, amount, commands.IntentReference{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ExternalID, b.ExternalID)
}

func TestSandboxGateway_OneIntentPerBooking(t *testing.T) {
	ctx := context.Background()
	g := infrapayment.NewSandboxGateway()
	amount, err := money.FromMinor(100, "usd")
	require.NoError(t, err)
	ref := commands.IntentReference{BookingID: uuid.New(), UserID: uuid.New()}

	a, err := g.CreateIntent(ctx, amount, ref)
	require.NoError(t, err)
	b, err := g.CreateIntent(ctx, amount, ref)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := g.CreateIntent(ctx, amount, commands.IntentReference{BookingID: uuid.New()})
	require.NoError(t, err)
	assert.NotEqual(t, a.ExternalID, other.ExternalID)
}

func TestSandboxGateway_UnknownIntent(t *testing.T) {
	ctx := context.Background()
	g := infrapayment.NewSandboxGateway()

	assert.ErrorIs(t, g.Confirm(ctx, "pi_live_123"), infrapayment.ErrUnknownIntent)
	assert.ErrorIs(t, g.Refund(ctx, "pi_live_123"), infrapayment.ErrUnknownIntent)

	// sandbox ids survive a restart
	assert.NoError(t, g.Confirm(ctx, "pi_sandbox_restarted"))
}
