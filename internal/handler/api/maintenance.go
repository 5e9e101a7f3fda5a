package api

import (
	"net/http"
	"time"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	cmds commands.MaintenanceCommands
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{cmds: cmds}
}

type CleanupResponse struct {
	Before           time.Time `json:"before"`
	EventsPurged     int64     `json:"eventsPurged"`
	DeliveriesPurged int64     `json:"deliveriesPurged"`
}

// @Summary Purge bookkeeping rows
// @Description Deletes published outbox events and webhook delivery records past retention. Admin role only.
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.CleanupResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /maintenance/cleanup [post]
func (h *MaintenanceHandler) Cleanup(c *gin.Context) {
	res, err := h.cmds.Cleanup(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, CleanupResponse{
		Before:           res.Before,
		EventsPurged:     res.EventsPurged,
		DeliveriesPurged: res.DeliveriesPurged,
	})
}
