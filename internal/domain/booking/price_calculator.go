package booking

import (
	"hotel-booking/internal/domain/money"
)

type PriceCalculator interface {
	Compute(nightlyRate money.Money, period StayPeriod, rooms int) (money.Money, error)
}

// NightlyRateCalculator charges rate x nights x rooms in integer minor units.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (NightlyRateCalculator) Compute(nightlyRate money.Money, period StayPeriod, rooms int) (money.Money, error) {
	if rooms < 1 {
		return money.Money{}, ErrInvalidRoomCount
	}
	nights := period.Nights()
	if nights < 1 {
		return money.Money{}, ErrInvalidStayPeriod
	}

	perRoom, err := nightlyRate.Times(int64(nights))
	if err != nil {
		return money.Money{}, err
	}
	return perRoom.Times(int64(rooms))
}
