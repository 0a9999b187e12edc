package booking

import (
	"net/mail"
	"strings"
	"time"
)

const (
	DateLayout         = "2006-01-02"
	MaxGuestNameLength = 200

	secondsPerDay = 24 * 60 * 60
)

type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod keeps only the calendar dates of checkIn and checkOut, read in
// their own locations. Nights are then counted on dates, never on instants.
func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayPeriod{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayPeriod{}, err
	}
	return NewStayPeriod(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateOf returns midnight UTC of t's calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Nights counts calendar days between the UTC midnights. time.Duration
// saturates at about 292 years, so the count goes through Unix seconds.
func (p StayPeriod) Nights() int {
	return int((p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay)
}

// Overlaps is the half-open interval test on [checkIn, checkOut).
// A stay ending on the day another begins does not overlap it.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) String() string {
	return p.checkIn.Format(DateLayout) + "/" + p.checkOut.Format(DateLayout)
}

type GuestContact struct {
	name  string
	email string
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || len(name) > MaxGuestNameLength {
		return GuestContact{}, ErrInvalidGuestContact
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return GuestContact{}, ErrInvalidGuestContact
	}
	return GuestContact{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }
func (g GuestContact) Phone() string { return g.phone }

// ReconstructGuestContact rebuilds a contact already validated on creation.
func ReconstructGuestContact(name, email, phone string) GuestContact {
	return GuestContact{name: name, email: email, phone: phone}
}
