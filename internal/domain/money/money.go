package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount    = errors.New("invalid money amount")
	ErrNegativeAmount   = errors.New("money cannot be negative")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrOverflow         = errors.New("money amount overflow")
)

const (
	minorDigits   = 2
	minorPerMajor = 100

	// keeps major*minorPerMajor inside int64
	maxMajorDigits = 15
)

// Money is a non-negative amount held in minor units (cents) of one currency.
type Money struct {
	minor    int64
	currency string
}

func FromMinor(minor int64, currency string) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{minor: minor, currency: cur}, nil
}

// Parse reads a decimal string such as "580", "580.5" or "580.005" and rounds it
// half-up to two decimal places.
func Parse(amount, currency string) (Money, error) {
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}

	s := strings.TrimSpace(amount)
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return Money{}, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return Money{}, ErrInvalidAmount
	}
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > maxMajorDigits {
		return Money{}, ErrOverflow
	}

	major := int64(0)
	if whole != "" {
		major, err = strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return Money{}, ErrInvalidAmount
		}
	}

	padded := frac + strings.Repeat("0", minorDigits)
	cents, _ := strconv.ParseInt(padded[:minorDigits], 10, 64)
	minor := major*minorPerMajor + cents
	if len(frac) > minorDigits && frac[minorDigits] >= '5' {
		minor++
	}

	return Money{minor: minor, currency: cur}, nil
}

func Zero(currency string) (Money, error) {
	return FromMinor(0, currency)
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) IsPositive() bool {
	return m.minor > 0
}

func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.minor > math.MaxInt64/n {
		return Money{}, ErrOverflow
	}
	return Money{minor: m.minor * n, currency: m.currency}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if m.minor > math.MaxInt64-other.minor {
		return Money{}, ErrOverflow
	}
	return Money{minor: m.minor + other.minor, currency: m.currency}, nil
}

func (m Money) Equal(other Money) bool {
	return m.minor == other.minor && m.currency == other.currency
}

// String renders the amount with exactly two decimals, without the currency.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/minorPerMajor, m.minor%minorPerMajor)
}

func normalizeCurrency(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'a' || r > 'z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
