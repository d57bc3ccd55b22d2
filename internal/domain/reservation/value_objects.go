package reservation

import (
	"errors"
	"time"
)

var (
	ErrEmptyStayRange    = errors.New("check-out date must be after check-in date")
	ErrInvertedStayRange = errors.New("check-out date cannot be before check-in date")
)

// StayRange is a half-open calendar interval [checkIn, checkOut). Both bounds
// are normalized to UTC midnight; a booking covers at least one night.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if out.Before(in) {
		return StayRange{}, ErrInvertedStayRange
	}
	if out.Equal(in) {
		return StayRange{}, ErrEmptyStayRange
	}

	return StayRange{checkIn: in, checkOut: out}, nil
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps reports whether two stays conflict. Half-open semantics: a stay
// checking out on the day another checks in does not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

// Contains reports whether the given date falls within the stay, check-in and
// check-out days inclusive. Used for past/current/future bucketing.
func (r StayRange) Contains(day time.Time) bool {
	d := truncateToDate(day)
	return !d.Before(r.checkIn) && !d.After(r.checkOut)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
