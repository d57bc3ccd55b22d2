package api

import (
	"errors"
	"net/http"

	reqdto "github.com/CamiloCortesM/nex-stay/internal/handler/dto/request"
	resdto "github.com/CamiloCortesM/nex-stay/internal/handler/dto/response"
	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{roomQueries: roomQueries}
}

// @Summary List available rooms
// @Description Rooms free for the whole stay, with a price quote per room
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param people query int true "Number of guests"
// @Param room_type query string false "Room type filter (SINGLE, DOUBLE, PRESIDENTIAL)"
// @Param exterior_view_only query bool false "Only rooms with an exterior view"
// @Param all_inclusive query bool false "Include all-inclusive cost in quotes"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(10)
// @Success 200 {object} resdto.PagedAvailableRoomsResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	var req reqdto.AvailableRoomsRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability arguments",
		})
		return
	}

	var page reqdto.PaginationRequest
	if bindErr := c.ShouldBindQuery(&page); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pagination arguments",
		})
		return
	}

	result, err := h.roomQueries.ListAvailableRooms(c.Request.Context(), req.ToQuery(), queries.Pagination{
		Offset: page.Offset,
		Limit:  page.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, errs.ErrInvalidPeopleCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "People count must be between 1 and 4",
			})
		case errors.Is(err, errs.ErrInvalidRoomType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room type",
			})
		case errors.Is(err, errs.ErrInvalidPagination):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination arguments",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedAvailableRooms(result))
}

// @Summary List room types
// @Description Distinct room types currently offered
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomTypesResponse
// @Router /rooms/types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.RoomTypesResponse{Types: types})
}
