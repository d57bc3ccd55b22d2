package queries

import (
	"github.com/CamiloCortesM/nex-stay/internal/domain/pricing"
)

// NewReservationView enriches a stored reservation with the itemized pricing
// breakdown under today's rules. Historical reservations therefore display
// the current schedule; only the persisted TotalPrice reflects booking time.
func NewReservationView(rec *ReservationRecord) *ReservationView {
	// Stored rows always satisfy check_out > check_in, so Nights cannot fail.
	nights, _ := pricing.Nights(rec.CheckIn, rec.CheckOut)
	weekendNights := pricing.WeekendNights(rec.CheckIn, nights)

	return &ReservationView{
		ID:           rec.ID,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		People:       rec.People,
		RoomID:       rec.RoomID,
		UserID:       rec.UserID,
		TotalPrice:   rec.TotalPrice,
		Status:       rec.Status,
		AllInclusive: rec.AllInclusive,
		CreatedAt:    rec.CreatedAt,
		Room:         newRoomView(rec.Room),

		DaysCount:         nights,
		NightsCount:       nights,
		BaseValue:         rec.Room.BasePrice,
		WeekendIncrement:  rec.Room.BasePrice * int64(weekendNights) * 20 / 100,
		DaysDiscount:      pricing.DiscountPerNight(nights) * int64(nights),
		AllInclusiveTotal: pricing.AllInclusiveCost(rec.AllInclusive, rec.People, nights),
	}
}

func newRoomView(rec RoomRecord) RoomView {
	return RoomView{
		ID:          rec.ID,
		Type:        rec.Type,
		View:        rec.View,
		BasePrice:   rec.BasePrice,
		MaxCapacity: rec.MaxCapacity,
		CreatedAt:   rec.CreatedAt,
	}
}

func newReservationViews(recs []*ReservationRecord) []*ReservationView {
	views := make([]*ReservationView, len(recs))
	for i, rec := range recs {
		views[i] = NewReservationView(rec)
	}
	return views
}
