//go:build e2e

package webhook_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"barbershop-booking/tests/common/httptest"
	"barbershop-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	svix "github.com/svix/svix-webhooks/go"
)

const webhookURL = "/api/webhooks/identity"

type webhookSuite struct {
	e2e.SharedSuite
	wh *svix.Webhook
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(webhookSuite))
}

func (s *webhookSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	wh, err := svix.NewWebhook(s.Config.Identity.WebhookSecret)
	require.NoError(s.T(), err)
	s.wh = wh
}

func (s *webhookSuite) deliver(id string, payload []byte) *http.Response {
	now := time.Now()
	signature, err := s.wh.Sign(id, now, payload)
	s.Require().NoError(err)

	headers := http.Header{}
	headers.Set("svix-id", id)
	headers.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
	headers.Set("svix-signature", signature)
	return httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, webhookURL, payload, headers, "").Result()
}

const userCreated = `{
	"type": "user.created",
	"data": {
		"id": "user_2abc",
		"first_name": "Carol",
		"last_name": "King",
		"email_addresses": [{"email_address": "Carol@Example.com"}]
	}
}`

func (s *webhookSuite) TestIdentitySync() {
	s.Run("署名付きのuser.createdでユーザーが作られる", func() {
		res := s.deliver("msg_1", []byte(userCreated))
		defer res.Body.Close()
		s.Equal(http.StatusOK, res.StatusCode)

		var name, externalID string
		err := s.DB.QueryRow(context.Background(),
			"SELECT name, external_id FROM users WHERE email = $1", "carol@example.com").Scan(&name, &externalID)
		s.Require().NoError(err)
		s.Equal("Carol King", name)
		s.Equal("user_2abc", externalID)
	})

	s.Run("同じ配信IDの再送は一度だけ処理される", func() {
		first := s.deliver("msg_2", []byte(userCreated))
		defer first.Body.Close()
		second := s.deliver("msg_2", []byte(userCreated))
		defer second.Body.Close()

		s.Equal(http.StatusOK, first.StatusCode)
		s.Equal(http.StatusOK, second.StatusCode)

		var deliveries int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM webhook_deliveries WHERE delivery_id = $1", "msg_2").Scan(&deliveries)
		s.Require().NoError(err)
		s.Equal(1, deliveries)
	})

	s.Run("署名なしは400", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, webhookURL, []byte(userCreated), http.Header{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Missing svix headers")
	})
}
