// Package pricing computes the price of a hotel stay. All functions are pure
// and operate on currency minor units (int64) and date-only values normalized
// to UTC midnight, so results never drift across timezones or DST changes.
package pricing

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("check-out date cannot be before check-in date")

const (
	// Weekend surcharge: 20% of the base price per weekend night.
	weekendSurchargePercent = 20

	allInclusivePerPersonPerNight = 25000
)

// Long-stay discount per night, keyed by inclusive lower bound on nights.
const (
	discountTier10Plus = 30000
	discountTier7to9   = 20000
	discountTier4to6   = 10000
)

type Params struct {
	CheckIn      time.Time
	CheckOut     time.Time
	People       int32
	BasePrice    int64
	AllInclusive bool
}

type Result struct {
	TotalPrice       int64
	TotalNights      int
	WeekendSurcharge int64
	Discount         int64
	AllInclusiveCost int64
	BasePrice        int64
}

// truncateToUTCDate drops the time-of-day component, keeping the calendar
// date as observed in the value's own location.
func truncateToUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of whole calendar nights between check-in and
// check-out. Equal dates yield 0. A check-out before check-in is a usage
// error; booking flows must additionally reject zero-night stays upstream.
func Nights(checkIn, checkOut time.Time) (int, error) {
	in := truncateToUTCDate(checkIn)
	out := truncateToUTCDate(checkOut)
	if out.Before(in) {
		return 0, ErrInvalidRange
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// WeekendNights counts how many of the given nights land on a Friday or
// Saturday, iterating calendar days from the start date.
func WeekendNights(start time.Time, nights int) int {
	day := truncateToUTCDate(start)
	count := 0
	for i := 0; i < nights; i++ {
		switch day.Weekday() {
		case time.Friday, time.Saturday:
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// DiscountPerNight returns the long-stay discount applied to every night of
// the stay. Thresholds are inclusive lower bounds.
func DiscountPerNight(nights int) int64 {
	switch {
	case nights >= 10:
		return discountTier10Plus
	case nights >= 7:
		return discountTier7to9
	case nights >= 4:
		return discountTier4to6
	default:
		return 0
	}
}

// AllInclusiveCost prices the all-inclusive add-on per person per night.
func AllInclusiveCost(enabled bool, people int32, nights int) int64 {
	if !enabled {
		return 0
	}
	return allInclusivePerPersonPerNight * int64(people) * int64(nights)
}

// Quote computes the total price of a stay with an itemized breakdown.
// The weekend surcharge uses integer floor division on the 20% share.
func Quote(params Params) (Result, error) {
	nights, err := Nights(params.CheckIn, params.CheckOut)
	if err != nil {
		return Result{}, err
	}

	weekendNights := WeekendNights(params.CheckIn, nights)

	baseTotal := params.BasePrice * int64(nights)
	weekendSurcharge := params.BasePrice * int64(weekendNights) * weekendSurchargePercent / 100
	discount := DiscountPerNight(nights) * int64(nights)
	allInclusiveCost := AllInclusiveCost(params.AllInclusive, params.People, nights)

	return Result{
		TotalPrice:       baseTotal + weekendSurcharge - discount + allInclusiveCost,
		TotalNights:      nights,
		WeekendSurcharge: weekendSurcharge,
		Discount:         discount,
		AllInclusiveCost: allInclusiveCost,
		BasePrice:        params.BasePrice,
	}, nil
}
