//go:build unit || e2e

package builder

import (
	"time"

	domreservation "github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	domroom "github.com/CamiloCortesM/nex-stay/internal/domain/room"
	reqdto "github.com/CamiloCortesM/nex-stay/internal/handler/dto/request"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RoomID       int64
	RoomType     domroom.Type
	RoomView     domroom.View
	BasePrice    int64
	MaxCapacity  int32
	CheckIn      time.Time
	CheckOut     time.Time
	People       int32
	AllInclusive bool
	TotalPrice   int64
	Status       string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		RoomID:      1,
		RoomType:    domroom.TypeDouble,
		RoomView:    domroom.ViewExterior,
		BasePrice:   100000,
		MaxCapacity: 2,
		// Monday to Saturday, one Friday night in range
		CheckIn:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		People:       2,
		AllInclusive: true,
		TotalPrice:   720000,
		Status:       string(domreservation.StatusActive),
		CreatedAt:    time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		People:       b.People,
		RoomType:     b.RoomType.String(),
		AllInclusive: b.AllInclusive,
	}
}

func (b *ReservationBuilder) BuildRoomRecord() queries.RoomRecord {
	return queries.RoomRecord{
		ID:          b.RoomID,
		Type:        b.RoomType.String(),
		View:        b.RoomView.String(),
		BasePrice:   b.BasePrice,
		MaxCapacity: b.MaxCapacity,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildRecord() *queries.ReservationRecord {
	return &queries.ReservationRecord{
		ID:           b.ID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		People:       b.People,
		RoomID:       b.RoomID,
		UserID:       b.UserID,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		AllInclusive: b.AllInclusive,
		CreatedAt:    b.CreatedAt,
		Room:         b.BuildRoomRecord(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.BuildRecord())
}

func (b *ReservationBuilder) BuildDomainRoom() *domroom.Room {
	return domroom.ReconstructRoom(
		b.RoomID, b.RoomType, b.RoomView, b.BasePrice, b.MaxCapacity, false, b.CreatedAt,
	)
}
