package queries

import (
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

type Pagination struct {
	Offset int32
	Limit  int32
}

// Normalize applies the documented defaults and rejects out-of-range values.
func (p Pagination) Normalize() (Pagination, error) {
	if p.Offset == 0 && p.Limit == 0 {
		return Pagination{Offset: DefaultOffset, Limit: DefaultLimit}, nil
	}
	if p.Offset < 0 || p.Limit < 1 {
		return Pagination{}, errs.ErrInvalidPagination
	}
	return p, nil
}

// HasMore reports whether a further page exists after returning itemCount
// rows from the given offset out of total matches.
func HasMore(offset, itemCount int32, total int64) bool {
	return int64(offset)+int64(itemCount) < total
}

// Read models (DTO for read side)

type RoomView struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	View        string    `json:"view"`
	BasePrice   int64     `json:"base_price"`
	MaxCapacity int32     `json:"max_capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	People       int32     `json:"people"`
	RoomID       int64     `json:"room_id"`
	UserID       uuid.UUID `json:"user_id"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	AllInclusive bool      `json:"all_inclusive"`
	CreatedAt    time.Time `json:"created_at"`
	Room         RoomView  `json:"room"`

	// Derived pricing fields, recomputed from the stored dates and the room
	// base price on every read. Only TotalPrice is frozen at booking time.
	DaysCount         int   `json:"days_count"`
	NightsCount       int   `json:"nights_count"`
	BaseValue         int64 `json:"base_value"`
	WeekendIncrement  int64 `json:"weekend_increment"`
	DaysDiscount      int64 `json:"days_discount"`
	AllInclusiveTotal int64 `json:"all_inclusive_total"`
}

type PaginatedReservations struct {
	Past         []*ReservationView `json:"past"`
	Current      []*ReservationView `json:"current"`
	Future       []*ReservationView `json:"future"`
	TotalPast    int64              `json:"total_past"`
	TotalCurrent int64              `json:"total_current"`
	TotalFuture  int64              `json:"total_future"`
}

type AvailableRoomItem struct {
	Room              RoomView `json:"room"`
	DaysCount         int      `json:"days_count"`
	NightsCount       int      `json:"nights_count"`
	BaseValue         int64    `json:"base_value"`
	WeekendIncrement  int64    `json:"weekend_increment"`
	DaysDiscount      int64    `json:"days_discount"`
	AllInclusiveTotal int64    `json:"all_inclusive_total"`
	TotalPrice        int64    `json:"total_price"`
}

type PagedAvailableRooms struct {
	Items   []*AvailableRoomItem `json:"items"`
	Total   int64                `json:"total"`
	Offset  int32                `json:"offset"`
	Limit   int32                `json:"limit"`
	HasMore bool                 `json:"has_more"`
}

// Raw records as hydrated by the read stores, before pricing enrichment.

type RoomRecord struct {
	ID          int64
	Type        string
	View        string
	BasePrice   int64
	MaxCapacity int32
	IsDeleted   bool
	CreatedAt   time.Time
}

type ReservationRecord struct {
	ID           uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	People       int32
	RoomID       int64
	UserID       uuid.UUID
	TotalPrice   int64
	Status       string
	AllInclusive bool
	CreatedAt    time.Time
	Room         RoomRecord
}

type ReservationBuckets struct {
	Past         []*ReservationRecord
	Current      []*ReservationRecord
	Future       []*ReservationRecord
	TotalPast    int64
	TotalCurrent int64
	TotalFuture  int64
}
