package response

import (
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID    `json:"id"`
	CheckIn      time.Time    `json:"checkIn"`
	CheckOut     time.Time    `json:"checkOut"`
	People       int32        `json:"people"`
	RoomID       int64        `json:"roomId"`
	UserID       uuid.UUID    `json:"userId"`
	TotalPrice   int64        `json:"totalPrice"`
	Status       string       `json:"status"`
	AllInclusive bool         `json:"allInclusive"`
	CreatedAt    time.Time    `json:"createdAt"`
	Room         RoomResponse `json:"room"`

	DaysCount         int   `json:"daysCount"`
	NightsCount       int   `json:"nightsCount"`
	BaseValue         int64 `json:"baseValue"`
	WeekendIncrement  int64 `json:"weekendIncrement"`
	DaysDiscount      int64 `json:"daysDiscount"`
	AllInclusiveTotal int64 `json:"allInclusiveTotal"`
}

type PaginatedReservationsResponse struct {
	Past         []*ReservationResponse `json:"past"`
	Current      []*ReservationResponse `json:"current"`
	Future       []*ReservationResponse `json:"future"`
	TotalPast    int64                  `json:"totalPast"`
	TotalCurrent int64                  `json:"totalCurrent"`
	TotalFuture  int64                  `json:"totalFuture"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           view.ID,
		CheckIn:      view.CheckIn,
		CheckOut:     view.CheckOut,
		People:       view.People,
		RoomID:       view.RoomID,
		UserID:       view.UserID,
		TotalPrice:   view.TotalPrice,
		Status:       view.Status,
		AllInclusive: view.AllInclusive,
		CreatedAt:    view.CreatedAt,
		Room:         FromRoomView(view.Room),

		DaysCount:         view.DaysCount,
		NightsCount:       view.NightsCount,
		BaseValue:         view.BaseValue,
		WeekendIncrement:  view.WeekendIncrement,
		DaysDiscount:      view.DaysDiscount,
		AllInclusiveTotal: view.AllInclusiveTotal,
	}
}

func FromPaginatedReservations(result *queries.PaginatedReservations) *PaginatedReservationsResponse {
	return &PaginatedReservationsResponse{
		Past:         fromReservationViews(result.Past),
		Current:      fromReservationViews(result.Current),
		Future:       fromReservationViews(result.Future),
		TotalPast:    result.TotalPast,
		TotalCurrent: result.TotalCurrent,
		TotalFuture:  result.TotalFuture,
	}
}

func fromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	responses := make([]*ReservationResponse, len(views))
	for i, view := range views {
		responses[i] = FromReservationView(view)
	}
	return responses
}
