//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"strconv"
	"testing"
	"time"

	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/tests/common/httptest"
	commandsmock "barbershop-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIdentityCommands
	wh           *svix.Webhook
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	wh, err := svix.NewWebhook(config.NewTestConfig().Identity.WebhookSecret)
	require.NoError(s.T(), err)
	s.wh = wh

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIdentityCommands(s.mockCtrl)
	s.router.POST("/webhooks/identity", api.NewWebhookHandler(wh, s.mockCommands).Identity)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) send(payload []byte, deliveryID string, sign bool) *nethttptest.ResponseRecorder {
	now := time.Now()
	req := nethttptest.NewRequest(http.MethodPost, "/webhooks/identity", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if deliveryID != "" {
		req.Header.Set("svix-id", deliveryID)
		req.Header.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
		signature := "v1,aW52YWxpZA=="
		if sign {
			var err error
			signature, err = s.wh.Sign(deliveryID, now, payload)
			require.NoError(s.T(), err)
		}
		req.Header.Set("svix-signature", signature)
	}
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func userCreatedPayload(s *WebhookHandlerTestSuite) []byte {
	body, err := json.Marshal(map[string]any{
		"type": "user.created",
		"data": map[string]any{
			"id":         "user_alice",
			"first_name": "Alice",
			"last_name":  "Smith",
			"email_addresses": []map[string]any{
				{"email_address": "alice@example.com"},
			},
		},
	})
	require.NoError(s.T(), err)
	return body
}

func (s *WebhookHandlerTestSuite) TestIdentity() {
	payload := userCreatedPayload(s)

	s.Run("success: verified user.created is synced", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), commands.SyncIdentityRequest{
			DeliveryID: "msg_1",
			EventType:  "user.created",
			ExternalID: "user_alice",
			Email:      "alice@example.com",
			Name:       "Alice Smith",
		}).Return(&commands.SyncResult{UserID: uuid.New(), Created: true}, nil).Times(1)

		rec := s.send(payload, "msg_1", true)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("User successfully created", body["message"])
	})

	s.Run("success: replayed delivery is acknowledged", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(&commands.SyncResult{Duplicate: true}, nil).Times(1)

		rec := s.send(payload, "msg_1", true)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Duplicate delivery ignored", body["message"])
	})

	s.Run("error: 400 without svix headers", func() {
		rec := s.send(payload, "", false)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing svix headers")
	})

	s.Run("error: 400 on a bad signature", func() {
		rec := s.send(payload, "msg_2", false)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 400 when the event has no email", func() {
		s.mockCommands.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrInvalidIdentity, errs.ErrValidation)).Times(1)

		rec := s.send(payload, "msg_3", true)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on a body that is not an event", func() {
		rec := s.send([]byte(`{"data":{}}`), "msg_4", true)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
