package inventory

import (
	"hotel-booking/internal/domain/booking"
)

// Hold is the footprint of one non-cancelled booking on a room type.
type Hold struct {
	Period booking.StayPeriod
	Rooms  int
}

type Availability struct {
	TotalInventory int
	Reserved       int
	Requested      int
}

// Remaining may be negative when inventory was lowered below existing bookings.
func (a Availability) Remaining() int {
	return a.TotalInventory - a.Reserved
}

func (a Availability) Available() bool {
	return a.Remaining() >= a.Requested
}

// Tally sums the rooms of every hold overlapping the requested stay.
// Holds that do not overlap are ignored, so callers may pass a superset.
func Tally(totalInventory int, requested booking.StayPeriod, rooms int, holds []Hold) Availability {
	reserved := 0
	for _, h := range holds {
		if h.Period.Overlaps(requested) {
			reserved += h.Rooms
		}
	}
	return Availability{
		TotalInventory: totalInventory,
		Reserved:       reserved,
		Requested:      rooms,
	}
}
