package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/infra"
	"github.com/CamiloCortesM/nex-stay/internal/infra/db"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/clock"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateReservationInput struct {
	CheckIn      time.Time
	CheckOut     time.Time
	People       int32
	RoomType     room.Type
	AllInclusive bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	publisher       EventPublisher
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewReservationCommands(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	pool *pgxpool.Pool,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		publisher:       publisher,
		pool:            pool,
		clock:           clock,
	}
}

// CreateReservation selects a room, prices the stay and persists the booking
// in one transaction. The schema-level overlap exclusion constraint is the
// authority on double-booking: a concurrent insert that slips past the
// availability read fails at commit and surfaces as ErrReservationConflict.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	if input.People < reservation.MinPeople || input.People > reservation.MaxPeople {
		return nil, errs.ErrInvalidPeopleCount
	}

	if !input.RoomType.IsValid() {
		return nil, errs.ErrInvalidRoomType
	}

	record, err := shared.RunInTxWithRetry(ctx, c.pool, 3, func(tx db.DBTX) (*queries.ReservationRecord, error) {
		availableRoom, txErr := c.roomRepo.FindAvailable(ctx, tx, input.RoomType, stay, input.People)
		if txErr != nil {
			return nil, errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}
		if availableRoom == nil {
			return nil, errs.ErrNoRoomsAvailable
		}

		res, txErr := reservation.NewReservation(availableRoom, userID, stay, input.People, input.AllInclusive)
		if txErr != nil {
			return nil, errs.Mark(txErr, errs.ErrDomainValidation)
		}

		if txErr = c.reservationRepo.Insert(ctx, tx, res); txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				return nil, errs.Mark(txErr, errs.ErrReservationConflict)
			}
			return nil, errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}

		// Read-after-write inside the same transaction for the full view.
		return c.reservationRepo.FindRecordByID(ctx, tx, res.ID())
	})
	if err != nil {
		return nil, err
	}

	view := queries.NewReservationView(record)
	c.publish(ctx, "reservation created", c.publisher.ReservationCreated, view)

	return view, nil
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	record, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*queries.ReservationRecord, error) {
		res, txErr := c.reservationRepo.FindByIDForUpdate(ctx, tx, id)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return nil, errs.ErrReservationNotFound
			}
			return nil, errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}

		if txErr = res.Cancel(); txErr != nil {
			return nil, errs.Mark(txErr, errs.ErrReservationAlreadyCancelled)
		}

		if txErr = c.reservationRepo.UpdateStatus(ctx, tx, id, res.Status()); txErr != nil {
			return nil, errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}

		return c.reservationRepo.FindRecordByID(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	view := queries.NewReservationView(record)
	c.publish(ctx, "reservation cancelled", c.publisher.ReservationCancelled, view)

	return view, nil
}

// publish emits a lifecycle event after commit. Broker failures are logged
// and never fail the request.
func (c *reservationCommandsImpl) publish(ctx context.Context, what string, fn func(context.Context, ReservationEvent) error, view *queries.ReservationView) {
	event := ReservationEvent{
		ReservationID: view.ID,
		RoomID:        view.RoomID,
		UserID:        view.UserID,
		CheckIn:       view.CheckIn,
		CheckOut:      view.CheckOut,
		TotalPrice:    view.TotalPrice,
		OccurredAt:    c.clock.Now(),
	}

	if err := fn(ctx, event); err != nil {
		slog.Warn("failed to publish event", "event", what, "reservation_id", view.ID, "error", err)
	}
}
