//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates mutable state between subtests. Room inventory is
// reference data and survives the reset.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE reservations")
	return err
}

func CreateTestRoom(t *testing.T, pool *pgxpool.Pool, roomType, view string, basePrice int64, maxCapacity int32) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		"INSERT INTO rooms (type, view, base_price, max_capacity) VALUES ($1, $2, $3, $4) RETURNING id",
		roomType, view, basePrice, maxCapacity).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestReservation(t *testing.T, pool *pgxpool.Pool, roomID int64, userID uuid.UUID, checkIn, checkOut time.Time, totalPrice int64, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reservations (id, room_id, user_id, check_in, check_out, people, all_inclusive, total_price, status)
		 VALUES ($1, $2, $3, $4, $5, 1, false, $6, $7)`,
		id, roomID, userID, checkIn, checkOut, totalPrice, status)
	require.NoError(t, err)

	return id
}
