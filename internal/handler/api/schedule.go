package api

import (
	"net/http"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	q queries.ScheduleQueries
}

func NewScheduleHandler(q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{q: q}
}

// @Summary List barbers
// @Description List the roster with the slots each barber offers
// @Tags barbers
// @Produce json
// @Success 200 {array} resdto.BarberResponse
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /barbers [get]
func (h *ScheduleHandler) ListBarbers(c *gin.Context) {
	views, err := h.q.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBarberViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Day slots
// @Description Ordered slot list for one calendar date
// @Tags appointments
// @Produce json
// @Param date query string true "Date (yyyy-MM-dd)"
// @Success 200 {array} resdto.DaySlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/slots [get]
func (h *ScheduleHandler) GetDaySlots(c *gin.Context) {
	var query reqdto.DaySlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": "date is required"})
		return
	}
	views, err := h.q.GetDaySlots(c.Request.Context(), query.Date)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySlotViews(views))
}
