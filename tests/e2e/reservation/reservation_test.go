//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/handler/dto/request"
	"github.com/CamiloCortesM/nex-stay/internal/handler/dto/response"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/jwt"
	"github.com/CamiloCortesM/nex-stay/tests/common/dbtest"
	"github.com/CamiloCortesM/nex-stay/tests/common/httptest"
	"github.com/CamiloCortesM/nex-stay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL   = "/api/reservations"
	availableRoomsURL = "/api/rooms/available"
	roomTypesURL      = "/api/rooms/types"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) token() string {
	svc := jwt.NewService(s.Config.JWT.Secret, s.Config.JWT.Duration)
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(s.T(), err)
	return token
}

func createRequest(checkIn, checkOut time.Time, people int32, roomType string, allInclusive bool) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		People:       people,
		RoomType:     roomType,
		AllInclusive: allInclusive,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// todayDate mirrors how the listing query derives "today" from the clock.
func todayDate() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedStayHistory inserts stays on both sides of today directly, since the
// booking endpoint only accepts future dates. Two finished stays, one in
// progress and two upcoming.
func (s *ReservationSuite) seedStayHistory(today time.Time) {
	t := s.T()
	roomA := dbtest.CreateTestRoom(t, s.DB, "SINGLE", "INTERIOR", 60000, 1)
	roomB := dbtest.CreateTestRoom(t, s.DB, "SINGLE", "EXTERIOR", 60000, 1)
	userID := uuid.New()

	dbtest.CreateTestReservation(t, s.DB, roomA, userID,
		today.AddDate(0, 0, -10), today.AddDate(0, 0, -8), 120000, "ACTIVE")
	dbtest.CreateTestReservation(t, s.DB, roomB, userID,
		today.AddDate(0, 0, -5), today.AddDate(0, 0, -3), 120000, "ACTIVE")
	dbtest.CreateTestReservation(t, s.DB, roomA, userID,
		today.AddDate(0, 0, -2), today.AddDate(0, 0, 2), 240000, "ACTIVE")
	dbtest.CreateTestReservation(t, s.DB, roomB, userID,
		today.AddDate(0, 0, 6), today.AddDate(0, 0, 8), 120000, "ACTIVE")
	dbtest.CreateTestReservation(t, s.DB, roomA, userID,
		today.AddDate(0, 0, 3), today.AddDate(0, 0, 5), 120000, "ACTIVE")
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("books a double room with the full price breakdown", func() {
		t := s.T()

		// Monday to Saturday: 5 nights, one Friday night, tier discount 10000.
		reqBody := createRequest(day(2027, 3, 1), day(2027, 3, 6), 2, "DOUBLE", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "ACTIVE", created.Status)
		require.Equal(t, int64(720000), created.TotalPrice)
		require.Equal(t, 5, created.NightsCount)
		require.Equal(t, int64(20000), created.WeekendIncrement)
		require.Equal(t, int64(50000), created.DaysDiscount)
		require.Equal(t, int64(250000), created.AllInclusiveTotal)
		require.Equal(t, "DOUBLE", created.Room.Type)
	})

	s.Run("requires authentication", func() {
		reqBody := createRequest(day(2027, 3, 1), day(2027, 3, 6), 2, "DOUBLE", false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an inverted stay range", func() {
		reqBody := createRequest(day(2027, 3, 6), day(2027, 3, 1), 2, "DOUBLE", false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("exhausting an inventory type returns a conflict", func() {
		t := s.T()
		reqBody := createRequest(day(2027, 7, 1), day(2027, 7, 4), 4, "PRESIDENTIAL", false)

		// Seeded inventory has five presidential rooms.
		for i := 0; i < 5; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
			require.Equal(t, http.StatusCreated, w.Code, "booking %d should succeed", i+1)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("a touching boundary is not an overlap", func() {
		t := s.T()

		// Occupy every single room for [10, 15).
		for i := 0; i < 10; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				createRequest(day(2027, 9, 10), day(2027, 9, 15), 1, "SINGLE", false), s.token())
			require.Equal(t, http.StatusCreated, w.Code)
		}

		// Check-in on the shared boundary day must still succeed.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createRequest(day(2027, 9, 15), day(2027, 9, 17), 1, "SINGLE", false), s.token())
		require.Equal(t, http.StatusCreated, w.Code)

		// An actual one-day overlap must not.
		for i := 0; i < 10; i++ {
			httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				createRequest(day(2027, 9, 15), day(2027, 9, 17), 1, "SINGLE", false), s.token())
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createRequest(day(2027, 9, 14), day(2027, 9, 16), 1, "SINGLE", false), s.token())
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("cancelled reservations free the room", func() {
		t := s.T()
		reqBody := createRequest(day(2027, 11, 1), day(2027, 11, 3), 4, "PRESIDENTIAL", false)

		var ids []uuid.UUID
		for i := 0; i < 5; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
			require.Equal(t, http.StatusCreated, w.Code)

			var created response.ReservationResponse
			httptest.DecodeResponseBody(t, w.Body, &created)
			ids = append(ids, created.ID)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
		require.Equal(t, http.StatusConflict, w.Code)

		cancelURL := fmt.Sprintf("%s/%s/cancel", reservationsURL, ids[0])
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, s.token())
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, s.token())
		require.Equal(t, http.StatusCreated, w.Code)
	})
}

// =============================================================================
// TestCancelReservation
// =============================================================================

func (s *ReservationSuite) TestCancelReservation() {
	s.Run("cancelling twice is a conflict", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createRequest(day(2027, 5, 1), day(2027, 5, 3), 1, "SINGLE", false), s.token())
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		cancelURL := fmt.Sprintf("%s/%s/cancel", reservationsURL, created.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, s.token())
		require.Equal(t, http.StatusOK, w.Code)

		var cancelled response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, s.token())
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("unknown reservation is not found", func() {
		cancelURL := fmt.Sprintf("%s/%s/cancel", reservationsURL, uuid.New())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, s.token())
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestAvailability
// =============================================================================

func (s *ReservationSuite) TestAvailability() {
	s.Run("booked rooms drop out of availability", func() {
		t := s.T()

		listURL := availableRoomsURL + "?check_in=2027-06-01&check_out=2027-06-05&people=4&room_type=PRESIDENTIAL"

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var before response.PagedAvailableRoomsResponse
		httptest.DecodeResponseBody(t, w.Body, &before)
		require.Equal(t, int64(5), before.Total)

		wr := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createRequest(day(2027, 6, 2), day(2027, 6, 4), 4, "PRESIDENTIAL", false), s.token())
		require.Equal(t, http.StatusCreated, wr.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var after response.PagedAvailableRoomsResponse
		httptest.DecodeResponseBody(t, w.Body, &after)
		require.Equal(t, int64(4), after.Total)
	})

	s.Run("capacity filters the inventory", func() {
		t := s.T()

		// Only the fifteen double and five presidential rooms take two guests.
		listURL := availableRoomsURL + "?check_in=2027-06-01&check_out=2027-06-05&people=2&limit=50"

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PagedAvailableRoomsResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)
		require.Equal(t, int64(20), resp.Total)
	})

	s.Run("complimentary rooms priced at zero are listed", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, "SINGLE", "INTERIOR", 0, 1)

		// Monday to Wednesday: two midweek nights, no surcharge or discount.
		listURL := availableRoomsURL + "?check_in=2027-06-07&check_out=2027-06-09&people=1&room_type=SINGLE&limit=50"

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PagedAvailableRoomsResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)
		require.Equal(t, int64(11), resp.Total)

		var free *response.AvailableRoomItemResponse
		for _, item := range resp.Items {
			if item.Room.BasePrice == 0 {
				free = item
			}
		}
		require.NotNil(t, free)
		require.Zero(t, free.TotalPrice)
	})

	s.Run("room types are listed", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomTypesURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		var resp response.RoomTypesResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		require.ElementsMatch(s.T(), []string{"SINGLE", "DOUBLE", "PRESIDENTIAL"}, resp.Types)
	})
}

// =============================================================================
// TestListReservations
// =============================================================================

func (s *ReservationSuite) TestListReservations() {
	s.Run("future bookings land in the future bucket", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			createRequest(day(2027, 8, 1), day(2027, 8, 3), 1, "SINGLE", false), s.token())
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.token())
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PaginatedReservationsResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)
		require.Equal(t, int64(1), resp.TotalFuture)
		require.Len(t, resp.Future, 1)
		require.Empty(t, resp.Past)
		require.Empty(t, resp.Current)
	})

	s.Run("stays are partitioned and ordered per bucket", func() {
		t := s.T()
		today := todayDate()
		s.seedStayHistory(today)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.token())
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PaginatedReservationsResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)

		require.Equal(t, int64(2), resp.TotalPast)
		require.Equal(t, int64(1), resp.TotalCurrent)
		require.Equal(t, int64(2), resp.TotalFuture)
		require.Len(t, resp.Past, 2)
		require.Len(t, resp.Current, 1)
		require.Len(t, resp.Future, 2)

		// Past lists the most recently ended stay first.
		require.True(t, resp.Past[0].CheckOut.Equal(today.AddDate(0, 0, -3)))
		require.True(t, resp.Past[1].CheckOut.Equal(today.AddDate(0, 0, -8)))
		// Current and future list the soonest check-in first.
		require.True(t, resp.Current[0].CheckIn.Equal(today.AddDate(0, 0, -2)))
		require.True(t, resp.Future[0].CheckIn.Equal(today.AddDate(0, 0, 3)))
		require.True(t, resp.Future[1].CheckIn.Equal(today.AddDate(0, 0, 6)))
	})

	s.Run("pagination applies per bucket with independent totals", func() {
		t := s.T()
		today := todayDate()
		s.seedStayHistory(today)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"?limit=1&offset=1", nil, s.token())
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.PaginatedReservationsResponse
		httptest.DecodeResponseBody(t, w.Body, &resp)

		// Totals still count whole buckets.
		require.Equal(t, int64(2), resp.TotalPast)
		require.Equal(t, int64(1), resp.TotalCurrent)
		require.Equal(t, int64(2), resp.TotalFuture)

		// Each bucket skips its own first row.
		require.Len(t, resp.Past, 1)
		require.True(t, resp.Past[0].CheckOut.Equal(today.AddDate(0, 0, -8)))
		require.Empty(t, resp.Current)
		require.Len(t, resp.Future, 1)
		require.True(t, resp.Future[0].CheckIn.Equal(today.AddDate(0, 0, 6)))
	})

	s.Run("rejects negative offsets", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"?offset=-1", nil, s.token())
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
