//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, in, out string) booking.StayPeriod {
	t.Helper()
	p, err := booking.ParseStayPeriod(in, out)
	require.NoError(t, err)
	return p
}

func TestStayPeriod(t *testing.T) {
	t.Run("nights counted on dates", func(t *testing.T) {
		p := mustPeriod(t, "2030-06-10", "2030-06-13")
		assert.Equal(t, 3, p.Nights())
		assert.Equal(t, "2030-06-10/2030-06-13", p.String())
	})

	t.Run("across a DST change", func(t *testing.T) {
		p := mustPeriod(t, "2030-03-09", "2030-03-11")
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("time of day and zone are dropped", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		p, err := booking.NewStayPeriod(
			time.Date(2030, 6, 10, 23, 30, 0, 0, tokyo),
			time.Date(2030, 6, 11, 0, 15, 0, 0, tokyo),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Nights())
		assert.Equal(t, time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC), p.CheckIn())
	})

	t.Run("stays longer than a duration can hold", func(t *testing.T) {
		p := mustPeriod(t, "0001-01-01", "9999-12-31")
		assert.Equal(t, 3652058, p.Nights())

		rate, err := money.Parse("1.00", "usd")
		require.NoError(t, err)
		total, err := booking.NewNightlyRateCalculator().Compute(rate, p, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(365205800), total.Minor())
	})

	t.Run("leap day counted", func(t *testing.T) {
		p := mustPeriod(t, "2028-02-28", "2028-03-01")
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("invalid ranges", func(t *testing.T) {
		cases := []struct {
			name, in, out string
			errIs         error
		}{
			{name: "same day", in: "2030-06-10", out: "2030-06-10", errIs: booking.ErrInvalidStayPeriod},
			{name: "reversed", in: "2030-06-12", out: "2030-06-10", errIs: booking.ErrInvalidStayPeriod},
			{name: "bad check-in", in: "2030/06/10", out: "2030-06-12", errIs: booking.ErrInvalidDate},
			{name: "bad check-out", in: "2030-06-10", out: "2030-02-30", errIs: booking.ErrInvalidDate},
			{name: "empty", in: "", out: "", errIs: booking.ErrInvalidDate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.ParseStayPeriod(tc.in, tc.out)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := mustPeriod(t, "2030-06-10", "2030-06-13")

	cases := []struct {
		name    string
		in, out string
		want    bool
	}{
		{name: "identical", in: "2030-06-10", out: "2030-06-13", want: true},
		{name: "inside", in: "2030-06-11", out: "2030-06-12", want: true},
		{name: "covers", in: "2030-06-01", out: "2030-06-30", want: true},
		{name: "starts inside", in: "2030-06-12", out: "2030-06-15", want: true},
		{name: "ends inside", in: "2030-06-08", out: "2030-06-11", want: true},
		{name: "back to back after", in: "2030-06-13", out: "2030-06-15", want: false},
		{name: "back to back before", in: "2030-06-08", out: "2030-06-10", want: false},
		{name: "disjoint", in: "2030-07-01", out: "2030-07-02", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustPeriod(t, tc.in, tc.out)
			assert.Equal(t, tc.want, base.Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base))
		})
	}
}

func TestGuestContact(t *testing.T) {
	t.Run("trims input", func(t *testing.T) {
		g, err := booking.NewGuestContact("  Aiko Tanaka ", " aiko@example.com ", " 090 ")
		require.NoError(t, err)
		assert.Equal(t, "Aiko Tanaka", g.Name())
		assert.Equal(t, "aiko@example.com", g.Email())
		assert.Equal(t, "090", g.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		g, err := booking.NewGuestContact("Aiko", "aiko@example.com", "")
		require.NoError(t, err)
		assert.Empty(t, g.Phone())
	})

	for name, args := range map[string][2]string{
		"empty name":        {"", "aiko@example.com"},
		"blank name":        {"   ", "aiko@example.com"},
		"missing email":     {"Aiko", ""},
		"no at sign":        {"Aiko", "aiko.example.com"},
		"display name form": {"Aiko", "Aiko <aiko@example.com>"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := booking.NewGuestContact(args[0], args[1], "")
			assert.ErrorIs(t, err, booking.ErrInvalidGuestContact)
		})
	}
}
