//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/CamiloCortesM/nex-stay/internal/handler/api"
	resdto "github.com/CamiloCortesM/nex-stay/internal/handler/dto/response"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"
	"github.com/CamiloCortesM/nex-stay/tests/common/builder"
	"github.com/CamiloCortesM/nex-stay/tests/common/httptest"
	"github.com/CamiloCortesM/nex-stay/tests/common/testutil"
	commandsmock "github.com/CamiloCortesM/nex-stay/tests/mock/commands"
	queriesmock "github.com/CamiloCortesM/nex-stay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created with the priced reservation", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.TotalPrice, resp.TotalPrice)
		s.Equal(returnView.NightsCount, resp.NightsCount)
	})

	s.Run("unauthorized: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("validation: binding rejects bad payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing check_in", testutil.Field("check_in", nil)},
			{"missing check_out", testutil.Field("check_out", nil)},
			{"missing room_type", testutil.Field("room_type", nil)},
			{"zero people", testutil.Field("people", 0)},
			{"five people", testutil.Field("people", 5)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("domain errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"inverted stay", errs.ErrInvalidStayRange, http.StatusBadRequest},
			{"no rooms left", errs.ErrNoRoomsAvailable, http.StatusConflict},
			{"lost the race", errs.ErrReservationConflict, http.StatusConflict},
			{"storage failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	returnView := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) { b.Status = "CANCELLED" }).
		BuildView()
	url := "/reservations/" + returnView.ID.String() + "/cancel"

	s.Run("success: returns 200 with CANCELLED status", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("CANCELLED", resp.Status)
	})

	s.Run("not found: returns 404", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("already cancelled: returns 409", func() {
		s.mockCommands.EXPECT().
			CancelReservation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("malformed id: returns 400 without hitting commands", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/cancel", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + returnView.ID.String()

	s.Run("success: returns 200 with derived pricing fields", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(returnView.BaseValue, resp.BaseValue)
		s.Equal(returnView.WeekendIncrement, resp.WeekendIncrement)
		s.Equal(returnView.DaysDiscount, resp.DaysDiscount)
	})

	s.Run("not found: returns 404", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	url := "/reservations"

	s.Run("success: returns the three buckets with totals", func() {
		past := builder.NewReservationBuilder().BuildView()
		future := builder.NewReservationBuilder().BuildView()

		s.mockQueries.EXPECT().
			ListPaginated(gomock.Any(), gomock.Any()).
			Return(&queries.PaginatedReservations{
				Past:      []*queries.ReservationView{past},
				Current:   []*queries.ReservationView{},
				Future:    []*queries.ReservationView{future},
				TotalPast: 12,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.PaginatedReservationsResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp.Past, 1)
		s.Len(resp.Future, 1)
		s.Equal(int64(12), resp.TotalPast)
	})

	s.Run("invalid pagination: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?offset=-1", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
