//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(t *testing.T, in, out string) booking.StayPeriod {
	t.Helper()
	p, err := booking.ParseStayPeriod(in, out)
	require.NoError(t, err)
	return p
}

func TestTally(t *testing.T) {
	requested := period(t, "2030-06-10", "2030-06-13")
	holds := []inventory.Hold{
		{Period: period(t, "2030-06-09", "2030-06-11"), Rooms: 2},
		{Period: period(t, "2030-06-12", "2030-06-14"), Rooms: 1},
		{Period: period(t, "2030-06-13", "2030-06-15"), Rooms: 4}, // starts on check-out
		{Period: period(t, "2030-06-05", "2030-06-10"), Rooms: 4}, // ends on check-in
	}

	a := inventory.Tally(5, requested, 2, holds)
	assert.Equal(t, 3, a.Reserved)
	assert.Equal(t, 2, a.Remaining())
	assert.True(t, a.Available())

	a = inventory.Tally(5, requested, 3, holds)
	assert.False(t, a.Available())

	t.Run("lowered inventory goes negative", func(t *testing.T) {
		a := inventory.Tally(1, requested, 1, holds)
		assert.Equal(t, -2, a.Remaining())
		assert.False(t, a.Available())
	})

	t.Run("no holds", func(t *testing.T) {
		a := inventory.Tally(0, requested, 1, nil)
		assert.False(t, a.Available())
		assert.True(t, inventory.Tally(1, requested, 1, nil).Available())
	})
}

func TestNewRoomType(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.RoomTypeBuilder)
		errIs  error
	}{
		{name: "valid"},
		{name: "zero inventory is allowed", mutate: func(b *builder.RoomTypeBuilder) { b.TotalInventory = 0 }},
		{name: "blank name", mutate: func(b *builder.RoomTypeBuilder) { b.Name = "  " }, errIs: inventory.ErrInvalidName},
		{name: "free room", mutate: func(b *builder.RoomTypeBuilder) { b.NightlyPrice = "0" }, errIs: inventory.ErrInvalidNightlyRate},
		{name: "zero capacity", mutate: func(b *builder.RoomTypeBuilder) { b.Capacity = 0 }, errIs: inventory.ErrInvalidCapacity},
		{name: "negative inventory", mutate: func(b *builder.RoomTypeBuilder) { b.TotalInventory = -1 }, errIs: inventory.ErrInvalidTotalInventory},
		{name: "capacity beyond MaxCount", mutate: func(b *builder.RoomTypeBuilder) { b.Capacity = booking.MaxCount + 1 }, errIs: inventory.ErrInvalidCapacity},
		{name: "inventory beyond MaxCount", mutate: func(b *builder.RoomTypeBuilder) { b.TotalInventory = booking.MaxCount + 1 }, errIs: inventory.ErrInvalidTotalInventory},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRoomTypeBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			rt, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.AccommodationID, rt.AccommodationID())
			assert.Equal(t, int64(58000), rt.NightlyRate().Minor())
			assert.Equal(t, rt.ID(), rt.Spec().ID)
		})
	}
}

func TestRoomTypeApply(t *testing.T) {
	later := time.Date(2030, 5, 3, 0, 0, 0, 0, time.UTC)

	t.Run("partial edit", func(t *testing.T) {
		rt := builder.NewRoomTypeBuilder().BuildStored()
		rate, _ := money.FromMinor(61000, "usd")

		err := rt.Apply(inventory.Changes{NightlyRate: &rate, TotalInventory: ptr.To(1)}, later)
		require.NoError(t, err)
		assert.Equal(t, "Deluxe Double", rt.Name())
		assert.Equal(t, int64(61000), rt.NightlyRate().Minor())
		assert.Equal(t, 1, rt.TotalInventory())
		assert.Equal(t, later, rt.UpdatedAt())
	})

	t.Run("invalid edit leaves the room type untouched", func(t *testing.T) {
		rt := builder.NewRoomTypeBuilder().BuildStored()
		before := *rt

		err := rt.Apply(inventory.Changes{Name: ptr.To("Suite"), Capacity: ptr.To(0)}, later)
		assert.ErrorIs(t, err, inventory.ErrInvalidCapacity)
		assert.Equal(t, before, *rt)
	})

	t.Run("empty edit", func(t *testing.T) {
		rt := builder.NewRoomTypeBuilder().BuildStored()
		assert.ErrorIs(t, rt.Apply(inventory.Changes{}, later), inventory.ErrNoChanges)
	})
}
