package request

import (
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/commands"
)

type CreateReservationRequest struct {
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
	People       int32     `json:"people" binding:"required,min=1,max=4"`
	RoomType     string    `json:"room_type" binding:"required"`
	AllInclusive bool      `json:"all_inclusive"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		People:       r.People,
		RoomType:     room.Type(r.RoomType),
		AllInclusive: r.AllInclusive,
	}
}

type PaginationRequest struct {
	Offset int32 `form:"offset,default=0" binding:"min=0"`
	Limit  int32 `form:"limit,default=10" binding:"min=1"`
}
