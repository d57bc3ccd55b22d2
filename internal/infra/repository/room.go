package repository

import (
	"context"
	"errors"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// findAvailableRoomSQL applies the half-open overlap rule: an ACTIVE
// reservation conflicts iff check_in < requested check-out AND
// check_out > requested check-in. Lowest id wins as a deterministic
// tie-break across equally eligible rooms.
const findAvailableRoomSQL = `
SELECT r.id, r.type, r.view, r.base_price, r.max_capacity, r.is_deleted, r.created_at
FROM rooms r
WHERE r.is_deleted = FALSE
  AND r.type = $1
  AND r.max_capacity >= $2
  AND NOT EXISTS (
    SELECT 1
    FROM reservations x
    WHERE x.room_id = r.id
      AND x.status = 'ACTIVE'
      AND x.check_in < $4
      AND x.check_out > $3
  )
ORDER BY r.id ASC
LIMIT 1
`

func (r *RoomRepository) FindAvailable(ctx context.Context, tx db.DBTX, roomType room.Type, stay reservation.StayRange, people int32) (*room.Room, error) {
	row := tx.QueryRow(ctx, findAvailableRoomSQL,
		roomType.String(), people, stay.CheckIn(), stay.CheckOut())

	found, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find available room", err)
	}

	return found, nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id          int64
		roomType    string
		view        string
		basePrice   int64
		maxCapacity int32
		isDeleted   bool
		createdAt   time.Time
	)

	if err := row.Scan(&id, &roomType, &view, &basePrice, &maxCapacity, &isDeleted, &createdAt); err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		id,
		room.Type(roomType),
		room.View(view),
		basePrice,
		maxCapacity,
		isDeleted,
		createdAt,
	), nil
}
