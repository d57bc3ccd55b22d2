package readstore

import (
	"context"

	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{pool: pool}
}

// Availability as a set filter: same half-open overlap predicate as the
// booking path, with optional type and view filters layered on top.
const availableRoomsWhere = `
WHERE r.is_deleted = FALSE
  AND r.max_capacity >= $1
  AND ($2::text IS NULL OR r.type = $2)
  AND ($3::boolean = FALSE OR r.view = 'EXTERIOR')
  AND NOT EXISTS (
    SELECT 1
    FROM reservations x
    WHERE x.room_id = r.id
      AND x.status <> 'CANCELLED'
      AND x.check_in < $5
      AND x.check_out > $4
  )
`

const availableRoomsSQL = `
SELECT r.id, r.type, r.view, r.base_price, r.max_capacity, r.is_deleted, r.created_at
FROM rooms r
` + availableRoomsWhere + `
ORDER BY r.id ASC
LIMIT $6 OFFSET $7
`

const countAvailableRoomsSQL = `
SELECT COUNT(*)
FROM rooms r
` + availableRoomsWhere

func (s *RoomReadStore) FindAvailablePaginated(ctx context.Context, criteria queries.AvailabilityCriteria) ([]*queries.RoomRecord, int64, error) {
	args := []any{
		criteria.People,
		criteria.RoomType,
		criteria.ExteriorViewOnly,
		criteria.CheckIn,
		criteria.CheckOut,
	}

	var total int64
	if err := s.pool.QueryRow(ctx, countAvailableRoomsSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count available rooms", err)
	}

	rows, err := s.pool.Query(ctx, availableRoomsSQL, append(args, criteria.Limit, criteria.Offset)...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	var records []*queries.RoomRecord
	for rows.Next() {
		var rec queries.RoomRecord
		if scanErr := rows.Scan(&rec.ID, &rec.Type, &rec.View, &rec.BasePrice, &rec.MaxCapacity, &rec.IsDeleted, &rec.CreatedAt); scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		records = append(records, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return records, total, nil
}

const listRoomTypesSQL = `
SELECT DISTINCT type FROM rooms WHERE is_deleted = FALSE ORDER BY type
`

func (s *RoomReadStore) ListTypes(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, listRoomTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if scanErr := rows.Scan(&t); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room type", scanErr)
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room types", err)
	}

	return types, nil
}
