package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/infra/db"
	"github.com/CamiloCortesM/nex-stay/internal/infra/repository"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationRecordProjection = `
SELECT res.id, res.check_in, res.check_out, res.people, res.room_id, res.user_id,
       res.total_price, res.status, res.all_inclusive, res.created_at,
       r.id, r.type, r.view, r.base_price, r.max_capacity, r.is_deleted, r.created_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationRecord, error) {
	row := s.pool.QueryRow(ctx, reservationRecordProjection+` WHERE res.id = $1`, id)

	rec, err := repository.ScanReservationRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rec, nil
}

// FindBuckets partitions every reservation around the given day. All six
// statements run in one repeatable-read transaction so the buckets and their
// counts observe the same snapshot.
func (s *ReservationReadStore) FindBuckets(ctx context.Context, today time.Time, limit, offset int32) (*queries.ReservationBuckets, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin read transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	buckets := &queries.ReservationBuckets{}

	if buckets.TotalPast, err = s.countWhere(ctx, tx, `check_out < $1`, today); err != nil {
		return nil, err
	}
	if buckets.TotalCurrent, err = s.countWhere(ctx, tx, `check_in <= $1 AND check_out >= $1`, today); err != nil {
		return nil, err
	}
	if buckets.TotalFuture, err = s.countWhere(ctx, tx, `check_in > $1`, today); err != nil {
		return nil, err
	}

	// Past: most recently ended first. Current and future: soonest first.
	if buckets.Past, err = s.listWhere(ctx, tx,
		`WHERE res.check_out < $1 ORDER BY res.check_out DESC`, today, limit, offset); err != nil {
		return nil, err
	}
	if buckets.Current, err = s.listWhere(ctx, tx,
		`WHERE res.check_in <= $1 AND res.check_out >= $1 ORDER BY res.check_in ASC`, today, limit, offset); err != nil {
		return nil, err
	}
	if buckets.Future, err = s.listWhere(ctx, tx,
		`WHERE res.check_in > $1 ORDER BY res.check_in ASC`, today, limit, offset); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit read transaction", err)
	}

	return buckets, nil
}

func (s *ReservationReadStore) countWhere(ctx context.Context, tx db.DBTX, cond string, today time.Time) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE `+cond, today).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (s *ReservationReadStore) listWhere(ctx context.Context, tx db.DBTX, clause string, today time.Time, limit, offset int32) ([]*queries.ReservationRecord, error) {
	rows, err := tx.Query(ctx, reservationRecordProjection+clause+` LIMIT $2 OFFSET $3`, today, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var records []*queries.ReservationRecord
	for rows.Next() {
		rec, scanErr := repository.ScanReservationRecord(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return records, nil
}
