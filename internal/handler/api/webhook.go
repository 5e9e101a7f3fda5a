package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	reqdto "barbershop-booking/internal/handler/dto/request"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

var errMissingSvixHeaders = errs.New("missing svix headers")

// WebhookVerifier checks svix-id / svix-timestamp / svix-signature against the raw body.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

type WebhookHandler struct {
	verifier WebhookVerifier
	cmds     commands.IdentityCommands
}

func NewWebhookHandler(verifier WebhookVerifier, cmds commands.IdentityCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, cmds: cmds}
}

// @Summary Identity provider webhook
// @Description Mirrors user.created / user.updated events into the user store
// @Tags webhooks
// @Accept json
// @Produce json
// @Param svix-id header string true "Delivery id"
// @Param svix-timestamp header string true "Delivery timestamp"
// @Param svix-signature header string true "Signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/identity [post]
func (h *WebhookHandler) Identity(c *gin.Context) {
	deliveryID := c.GetHeader("svix-id")
	if deliveryID == "" || c.GetHeader("svix-timestamp") == "" || c.GetHeader("svix-signature") == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingSvixHeaders, "Missing svix headers", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.verifier.Verify(body, c.Request.Header); err != nil {
		slog.Warn("webhook signature rejected", "delivery_id", deliveryID, "error", err.Error())
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook signature", nil)
		return
	}

	var evt reqdto.IdentityWebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil || evt.Type == "" {
		if err == nil {
			err = errs.New("event type missing")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res, err := h.cmds.Sync(c.Request.Context(), evt.ToCommand(deliveryID))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	var msg string
	switch {
	case res.Duplicate:
		msg = "Duplicate delivery ignored"
	case res.Ignored:
		msg = "Event type ignored"
	case res.Created:
		msg = "User successfully created"
	default:
		msg = "User successfully updated"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
