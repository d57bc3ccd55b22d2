package response

import (
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"
)

type RoomResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	View        string    `json:"view"`
	BasePrice   int64     `json:"basePrice"`
	MaxCapacity int32     `json:"maxCapacity"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AvailableRoomItemResponse struct {
	Room              RoomResponse `json:"room"`
	DaysCount         int          `json:"daysCount"`
	NightsCount       int          `json:"nightsCount"`
	BaseValue         int64        `json:"baseValue"`
	WeekendIncrement  int64        `json:"weekendIncrement"`
	DaysDiscount      int64        `json:"daysDiscount"`
	AllInclusiveTotal int64        `json:"allInclusiveTotal"`
	TotalPrice        int64        `json:"totalPrice"`
}

type PagedAvailableRoomsResponse struct {
	Items   []*AvailableRoomItemResponse `json:"items"`
	Total   int64                        `json:"total"`
	Offset  int32                        `json:"offset"`
	Limit   int32                        `json:"limit"`
	HasMore bool                         `json:"hasMore"`
}

type RoomTypesResponse struct {
	Types []string `json:"types"`
}

func FromRoomView(view queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:          view.ID,
		Type:        view.Type,
		View:        view.View,
		BasePrice:   view.BasePrice,
		MaxCapacity: view.MaxCapacity,
		CreatedAt:   view.CreatedAt,
	}
}

func FromPagedAvailableRooms(result *queries.PagedAvailableRooms) *PagedAvailableRoomsResponse {
	items := make([]*AvailableRoomItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = &AvailableRoomItemResponse{
			Room:              FromRoomView(item.Room),
			DaysCount:         item.DaysCount,
			NightsCount:       item.NightsCount,
			BaseValue:         item.BaseValue,
			WeekendIncrement:  item.WeekendIncrement,
			DaysDiscount:      item.DaysDiscount,
			AllInclusiveTotal: item.AllInclusiveTotal,
			TotalPrice:        item.TotalPrice,
		}
	}

	return &PagedAvailableRoomsResponse{
		Items:   items,
		Total:   result.Total,
		Offset:  result.Offset,
		Limit:   result.Limit,
		HasMore: result.HasMore,
	}
}
