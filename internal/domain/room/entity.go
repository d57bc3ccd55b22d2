package room

import (
	"errors"
	"time"
)

var (
	ErrInvalidType     = errors.New("invalid room type")
	ErrInvalidView     = errors.New("invalid room view")
	ErrInvalidCapacity = errors.New("room capacity must be at least 1")
	ErrNegativePrice   = errors.New("room base price cannot be negative")
)

// Room is a bookable unit of inventory. Rooms are soft-deleted: historical
// reservations keep referencing them, so they are never physically removed.
type Room struct {
	id          int64
	roomType    Type
	view        View
	basePrice   int64
	maxCapacity int32
	isDeleted   bool
	createdAt   time.Time
}

func NewRoom(id int64, roomType Type, view View, basePrice int64, maxCapacity int32) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if !view.IsValid() {
		return nil, ErrInvalidView
	}
	if maxCapacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if basePrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:          id,
		roomType:    roomType,
		view:        view,
		basePrice:   basePrice,
		maxCapacity: maxCapacity,
	}, nil
}

func ReconstructRoom(
	id int64,
	roomType Type,
	view View,
	basePrice int64,
	maxCapacity int32,
	isDeleted bool,
	createdAt time.Time,
) *Room {
	return &Room{
		id:          id,
		roomType:    roomType,
		view:        view,
		basePrice:   basePrice,
		maxCapacity: maxCapacity,
		isDeleted:   isDeleted,
		createdAt:   createdAt,
	}
}

func (r *Room) CanAccommodate(people int32) bool {
	return !r.isDeleted && r.maxCapacity >= people
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) View() View           { return r.view }
func (r *Room) BasePrice() int64     { return r.basePrice }
func (r *Room) MaxCapacity() int32   { return r.maxCapacity }
func (r *Room) IsDeleted() bool      { return r.isDeleted }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
