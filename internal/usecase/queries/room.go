package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/pricing"
	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
)

type AvailableRoomsQuery struct {
	CheckIn          time.Time
	CheckOut         time.Time
	People           int32
	RoomType         *room.Type
	ExteriorViewOnly bool
	AllInclusive     bool
}

// AvailabilityCriteria is the fully validated filter handed to the read store.
type AvailabilityCriteria struct {
	CheckIn          time.Time
	CheckOut         time.Time
	People           int32
	RoomType         *string
	ExteriorViewOnly bool
	Limit            int32
	Offset           int32
}

type RoomQueries interface {
	ListAvailableRooms(ctx context.Context, query AvailableRoomsQuery, pagination Pagination) (*PagedAvailableRooms, error)
	ListRoomTypes(ctx context.Context) ([]string, error)
}

type RoomReadStore interface {
	// FindAvailablePaginated returns the offset/limit slice of non-deleted,
	// non-conflicting rooms ordered by ascending id, plus the pre-slice total.
	FindAvailablePaginated(ctx context.Context, criteria AvailabilityCriteria) ([]*RoomRecord, int64, error)
	ListTypes(ctx context.Context) ([]string, error)
}

// RoomTypeCache is an optional read-through cache; implementations degrade to
// misses when the backing store is unreachable.
type RoomTypeCache interface {
	Get(ctx context.Context) ([]string, bool)
	Set(ctx context.Context, types []string)
}

type roomQueriesImpl struct {
	store RoomReadStore
	cache RoomTypeCache
}

func NewRoomQueries(store RoomReadStore, cache RoomTypeCache) RoomQueries {
	return &roomQueriesImpl{store: store, cache: cache}
}

func (q *roomQueriesImpl) ListAvailableRooms(ctx context.Context, query AvailableRoomsQuery, pagination Pagination) (*PagedAvailableRooms, error) {
	stay, err := reservation.NewStayRange(query.CheckIn, query.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	if query.People < reservation.MinPeople || query.People > reservation.MaxPeople {
		return nil, errs.ErrInvalidPeopleCount
	}

	var roomType *string
	if query.RoomType != nil {
		if !query.RoomType.IsValid() {
			return nil, errs.ErrInvalidRoomType
		}
		s := query.RoomType.String()
		roomType = &s
	}

	p, err := pagination.Normalize()
	if err != nil {
		return nil, err
	}

	rooms, total, err := q.store.FindAvailablePaginated(ctx, AvailabilityCriteria{
		CheckIn:          stay.CheckIn(),
		CheckOut:         stay.CheckOut(),
		People:           query.People,
		RoomType:         roomType,
		ExteriorViewOnly: query.ExteriorViewOnly,
		Limit:            p.Limit,
		Offset:           p.Offset,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]*AvailableRoomItem, len(rooms))
	for i, rec := range rooms {
		quote, quoteErr := pricing.Quote(pricing.Params{
			CheckIn:      stay.CheckIn(),
			CheckOut:     stay.CheckOut(),
			People:       query.People,
			BasePrice:    rec.BasePrice,
			AllInclusive: query.AllInclusive,
		})
		if quoteErr != nil {
			return nil, quoteErr
		}

		items[i] = &AvailableRoomItem{
			Room:              newRoomView(*rec),
			DaysCount:         quote.TotalNights,
			NightsCount:       quote.TotalNights,
			BaseValue:         quote.BasePrice,
			WeekendIncrement:  quote.WeekendSurcharge,
			DaysDiscount:      quote.Discount,
			AllInclusiveTotal: quote.AllInclusiveCost,
			TotalPrice:        quote.TotalPrice,
		}
	}

	return &PagedAvailableRooms{
		Items:   items,
		Total:   total,
		Offset:  p.Offset,
		Limit:   p.Limit,
		HasMore: HasMore(p.Offset, int32(len(items)), total),
	}, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]string, error) {
	if types, ok := q.cache.Get(ctx); ok {
		return types, nil
	}

	types, err := q.store.ListTypes(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.Set(ctx, types)
	slog.Debug("room types cache refreshed", "count", len(types))

	return types, nil
}
