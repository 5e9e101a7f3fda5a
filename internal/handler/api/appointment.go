package api

import (
	"net/http"

	reqdto "barbershop-booking/internal/handler/dto/request"
	resdto "barbershop-booking/internal/handler/dto/response"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoIdentity = errs.New("identity missing from context")

type AppointmentHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewAppointmentHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book a slot
// @Description Book a (date, time slot) with a barber for the caller
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Book(c.Request.Context(), req.ToCommand(), caller)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentResult(result))
}

// @Summary Cancel a booking
// @Description Cancel the caller's booking at (date, time slot)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelAppointmentRequest true "Cancel request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Cancel(c.Request.Context(), req.ToCommand(), caller)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentResult(result))
}

// @Summary My reservations
// @Description The caller's appointments from today onward
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments/mine [get]
func (h *AppointmentHandler) Mine(c *gin.Context) {
	caller, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
		return
	}
	views, err := h.q.GetUserReservations(c.Request.Context(), caller.Email)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
