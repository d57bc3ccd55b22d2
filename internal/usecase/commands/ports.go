package commands

import (
	"context"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/infra/db"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomRepository interface {
	// FindAvailable picks the lowest-id non-deleted room of the requested
	// type that fits the party and has no ACTIVE reservation overlapping the
	// stay. A nil room without error means no capacity.
	FindAvailable(ctx context.Context, tx db.DBTX, roomType room.Type, stay reservation.StayRange, people int32) (*room.Room, error)
}

type ReservationRepository interface {
	Insert(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	// FindByIDForUpdate locks the row for the remainder of the transaction.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
	FindRecordByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*queries.ReservationRecord, error)
}

type ReservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        int64     `json:"room_id"`
	UserID        uuid.UUID `json:"user_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalPrice    int64     `json:"total_price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher notifies downstream consumers of reservation lifecycle
// changes. Implementations must never block the request path on broker
// failures; errors are for logging only.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, event ReservationEvent) error
	ReservationCancelled(ctx context.Context, event ReservationEvent) error
}
