package reservation

import (
	"errors"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/pricing"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"

	"github.com/google/uuid"
)

const (
	MinPeople = 1
	MaxPeople = 4
)

var (
	ErrInvalidPeopleCount = errors.New("people count must be between 1 and 4")
	ErrRoomTooSmall       = errors.New("room capacity is below the requested people count")
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
)

// Reservation books a room for a stay. The total price is computed once at
// creation and frozen; itemized breakdowns are recomputed on read so they
// always reflect the current pricing rules.
type Reservation struct {
	id           uuid.UUID
	stay         StayRange
	people       int32
	roomID       int64
	userID       uuid.UUID
	totalPrice   int64
	status       Status
	allInclusive bool
	createdAt    time.Time
}

func NewReservation(
	assignedRoom *room.Room,
	userID uuid.UUID,
	stay StayRange,
	people int32,
	allInclusive bool,
) (*Reservation, error) {
	if people < MinPeople || people > MaxPeople {
		return nil, ErrInvalidPeopleCount
	}
	if !assignedRoom.CanAccommodate(people) {
		return nil, ErrRoomTooSmall
	}

	quote, err := pricing.Quote(pricing.Params{
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		People:       people,
		BasePrice:    assignedRoom.BasePrice(),
		AllInclusive: allInclusive,
	})
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:           uuid.New(),
		stay:         stay,
		people:       people,
		roomID:       assignedRoom.ID(),
		userID:       userID,
		totalPrice:   quote.TotalPrice,
		status:       StatusActive,
		allInclusive: allInclusive,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	stay StayRange,
	people int32,
	roomID int64,
	userID uuid.UUID,
	totalPrice int64,
	status Status,
	allInclusive bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		stay:         stay,
		people:       people,
		roomID:       roomID,
		userID:       userID,
		totalPrice:   totalPrice,
		status:       status,
		allInclusive: allInclusive,
		createdAt:    createdAt,
	}
}

// Cancel transitions ACTIVE to CANCELLED. CANCELLED is terminal; cancelling
// twice is an error the caller surfaces, not a silent no-op.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.roomID != other.roomID {
		return false
	}
	if !r.IsActive() || !other.IsActive() {
		return false
	}
	return r.stay.Overlaps(other.stay)
}

func (r *Reservation) ID() uuid.UUID       { return r.id }
func (r *Reservation) Stay() StayRange     { return r.stay }
func (r *Reservation) People() int32       { return r.people }
func (r *Reservation) RoomID() int64       { return r.roomID }
func (r *Reservation) UserID() uuid.UUID   { return r.userID }
func (r *Reservation) TotalPrice() int64   { return r.totalPrice }
func (r *Reservation) Status() Status      { return r.status }
func (r *Reservation) AllInclusive() bool  { return r.allInclusive }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
