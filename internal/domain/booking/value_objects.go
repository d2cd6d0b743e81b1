package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCheckOutBeforeCheckIn = errors.New("check-out date must not be before check-in date")
	ErrEmptyGuestName        = errors.New("guest name must not be empty")
	ErrNegativeExtraGuests   = errors.New("extra guest count cannot be negative")
)

// StayPeriod is the booked date range. Check-out on the check-in date is a
// same-day stay and legal; earlier is not.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if checkOut.Before(checkIn) {
		return StayPeriod{}, ErrCheckOutBeforeCheckIn
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Guest bundles the registered guest's identity fields.
type Guest struct {
	name        string
	aadhaar     string
	mobile      string
	extraGuests int
}

func NewGuest(name, aadhaar, mobile string, extraGuests int) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrEmptyGuestName
	}
	if extraGuests < 0 {
		return Guest{}, ErrNegativeExtraGuests
	}
	return Guest{
		name:        name,
		aadhaar:     strings.TrimSpace(aadhaar),
		mobile:      strings.TrimSpace(mobile),
		extraGuests: extraGuests,
	}, nil
}

func (g Guest) Name() string     { return g.name }
func (g Guest) Aadhaar() string  { return g.aadhaar }
func (g Guest) Mobile() string   { return g.mobile }
func (g Guest) ExtraGuests() int { return g.extraGuests }
