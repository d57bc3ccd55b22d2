package queries

import (
	"context"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/clock"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListPaginated(ctx context.Context, pagination Pagination) (*PaginatedReservations, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationRecord, error)
	// FindBuckets partitions all reservations around the given day within a
	// single repeatable-read transaction so the three buckets share one
	// consistent snapshot.
	FindBuckets(ctx context.Context, today time.Time, limit, offset int32) (*ReservationBuckets, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewReservationView(rec), nil
}

func (q *reservationQueriesImpl) ListPaginated(ctx context.Context, pagination Pagination) (*PaginatedReservations, error) {
	p, err := pagination.Normalize()
	if err != nil {
		return nil, err
	}

	today := truncateToDate(q.clock.Now())

	buckets, err := q.store.FindBuckets(ctx, today, p.Limit, p.Offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &PaginatedReservations{
		Past:         newReservationViews(buckets.Past),
		Current:      newReservationViews(buckets.Current),
		Future:       newReservationViews(buckets.Future),
		TotalPast:    buckets.TotalPast,
		TotalCurrent: buckets.TotalCurrent,
		TotalFuture:  buckets.TotalFuture,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
