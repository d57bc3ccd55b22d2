package request

import (
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"
)

type AvailableRoomsRequest struct {
	CheckIn          time.Time `form:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut         time.Time `form:"check_out" binding:"required" time_format:"2006-01-02"`
	People           int32     `form:"people" binding:"required,min=1,max=4"`
	RoomType         *string   `form:"room_type"`
	ExteriorViewOnly bool      `form:"exterior_view_only,default=false"`
	AllInclusive     bool      `form:"all_inclusive,default=false"`
}

func (r AvailableRoomsRequest) ToQuery() queries.AvailableRoomsQuery {
	var roomType *room.Type
	if r.RoomType != nil && *r.RoomType != "" {
		t := room.Type(*r.RoomType)
		roomType = &t
	}

	return queries.AvailableRoomsQuery{
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		People:           r.People,
		RoomType:         roomType,
		ExteriorViewOnly: r.ExteriorViewOnly,
		AllInclusive:     r.AllInclusive,
	}
}
