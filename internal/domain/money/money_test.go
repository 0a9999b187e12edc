//go:build unit

package money_test

import (
	"math"
	"testing"

	"hotel-booking/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name      string
		amount    string
		currency  string
		wantMinor int64
		wantCur   string
		errIs     error
	}{
		{name: "whole amount", amount: "580", currency: "usd", wantMinor: 58000, wantCur: "usd"},
		{name: "two decimals", amount: "580.25", currency: "USD", wantMinor: 58025, wantCur: "usd"},
		{name: "one decimal", amount: "580.5", currency: "eur", wantMinor: 58050, wantCur: "eur"},
		{name: "rounds half up", amount: "0.005", currency: "usd", wantMinor: 1, wantCur: "usd"},
		{name: "rounds down below half", amount: "10.994", currency: "usd", wantMinor: 1099, wantCur: "usd"},
		{name: "leading dot", amount: ".75", currency: "usd", wantMinor: 75, wantCur: "usd"},
		{name: "surrounding spaces", amount: " 12.00 ", currency: " jpy ", wantMinor: 1200, wantCur: "jpy"},
		{name: "negative", amount: "-1.00", currency: "usd", errIs: money.ErrNegativeAmount},
		{name: "empty", amount: "", currency: "usd", errIs: money.ErrInvalidAmount},
		{name: "letters", amount: "12a", currency: "usd", errIs: money.ErrInvalidAmount},
		{name: "two dots", amount: "1.2.3", currency: "usd", errIs: money.ErrInvalidAmount},
		{name: "too many digits", amount: "1234567890123456", currency: "usd", errIs: money.ErrOverflow},
		{name: "bad currency", amount: "1", currency: "us", errIs: money.ErrInvalidCurrency},
		{name: "non-letter currency", amount: "1", currency: "u$d", errIs: money.ErrInvalidCurrency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := money.Parse(tc.amount, tc.currency)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMinor, m.Minor())
			assert.Equal(t, tc.wantCur, m.Currency())
		})
	}
}

func TestFromMinor(t *testing.T) {
	m, err := money.FromMinor(348000, "USD")
	require.NoError(t, err)
	assert.Equal(t, "3480.00", m.String())
	assert.Equal(t, "usd", m.Currency())

	_, err = money.FromMinor(-1, "usd")
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestArithmetic(t *testing.T) {
	rate, err := money.Parse("580.00", "usd")
	require.NoError(t, err)

	t.Run("times", func(t *testing.T) {
		total, err := rate.Times(6)
		require.NoError(t, err)
		assert.Equal(t, int64(348000), total.Minor())
		assert.Equal(t, "3480.00", total.String())
	})

	t.Run("times zero", func(t *testing.T) {
		total, err := rate.Times(0)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("times negative", func(t *testing.T) {
		_, err := rate.Times(-1)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("times overflow", func(t *testing.T) {
		big, err := money.FromMinor(math.MaxInt64/2+1, "usd")
		require.NoError(t, err)
		_, err = big.Times(2)
		assert.ErrorIs(t, err, money.ErrOverflow)
	})

	t.Run("add", func(t *testing.T) {
		extra, _ := money.FromMinor(5, "usd")
		sum, err := rate.Add(extra)
		require.NoError(t, err)
		assert.Equal(t, "580.05", sum.String())
	})

	t.Run("add currency mismatch", func(t *testing.T) {
		eur, _ := money.FromMinor(5, "eur")
		_, err := rate.Add(eur)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("add overflow", func(t *testing.T) {
		big, _ := money.FromMinor(math.MaxInt64, "usd")
		_, err := big.Add(rate)
		assert.ErrorIs(t, err, money.ErrOverflow)
	})

	t.Run("equal", func(t *testing.T) {
		same, _ := money.FromMinor(58000, "usd")
		other, _ := money.FromMinor(58000, "eur")
		assert.True(t, rate.Equal(same))
		assert.False(t, rate.Equal(other))
	})
}

func TestString(t *testing.T) {
	for minor, want := range map[int64]string{
		0:      "0.00",
		5:      "0.05",
		100:    "1.00",
		123456: "1234.56",
	} {
		m, err := money.FromMinor(minor, "usd")
		require.NoError(t, err)
		assert.Equal(t, want, m.String())
	}
}
