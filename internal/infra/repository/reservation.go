package repository

import (
	"context"
	"errors"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/infra/db"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes of interest.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (id, check_in, check_out, people, room_id, user_id, total_price, status, all_inclusive)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *ReservationRepository) Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.People(),
		res.RoomID(),
		res.UserID(),
		res.TotalPrice(),
		res.Status().String(),
		res.AllInclusive(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				// The overlap exclusion constraint rejected a concurrent
				// double-booking for the same room and date range.
				return infra.WrapRepoErr("reservation overlaps an existing booking", err, infra.KindConflict)
			case pgUniqueViolation:
				return infra.WrapRepoErr("duplicate reservation id", err, infra.KindDuplicateKey)
			}
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}

	return nil
}

const findReservationForUpdateSQL = `
SELECT id, check_in, check_out, people, room_id, user_id, total_price, status, all_inclusive, created_at
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := tx.QueryRow(ctx, findReservationForUpdateSQL, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	return res, nil
}

const updateReservationStatusSQL = `
UPDATE reservations SET status = $2 WHERE id = $1
`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const findReservationRecordSQL = `
SELECT res.id, res.check_in, res.check_out, res.people, res.room_id, res.user_id,
       res.total_price, res.status, res.all_inclusive, res.created_at,
       r.id, r.type, r.view, r.base_price, r.max_capacity, r.is_deleted, r.created_at
FROM reservations res
JOIN rooms r ON r.id = res.room_id
WHERE res.id = $1
`

func (r *ReservationRepository) FindRecordByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*queries.ReservationRecord, error) {
	row := tx.QueryRow(ctx, findReservationRecordSQL, id)

	rec, err := ScanReservationRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation record", err)
	}

	return rec, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id           uuid.UUID
		checkIn      time.Time
		checkOut     time.Time
		people       int32
		roomID       int64
		userID       uuid.UUID
		totalPrice   int64
		status       string
		allInclusive bool
		createdAt    time.Time
	)

	if err := row.Scan(&id, &checkIn, &checkOut, &people, &roomID, &userID, &totalPrice, &status, &allInclusive, &createdAt); err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id,
		stay,
		people,
		roomID,
		userID,
		totalPrice,
		reservation.Status(status),
		allInclusive,
		createdAt,
	), nil
}

// ScanReservationRecord hydrates a reservation row joined with its room.
// Shared with the read store, which issues the same projection.
func ScanReservationRecord(row pgx.Row) (*queries.ReservationRecord, error) {
	var rec queries.ReservationRecord

	err := row.Scan(
		&rec.ID, &rec.CheckIn, &rec.CheckOut, &rec.People, &rec.RoomID, &rec.UserID,
		&rec.TotalPrice, &rec.Status, &rec.AllInclusive, &rec.CreatedAt,
		&rec.Room.ID, &rec.Room.Type, &rec.Room.View, &rec.Room.BasePrice,
		&rec.Room.MaxCapacity, &rec.Room.IsDeleted, &rec.Room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
