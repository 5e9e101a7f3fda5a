//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"barbershop-booking/internal/handler/api"
	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/tests/common/httptest"
	commandsmock "barbershop-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler_Cleanup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("正常系: 削除件数を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := commandsmock.NewMockMaintenanceCommands(ctrl)
		before := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
		m.EXPECT().Cleanup(gomock.Any()).Return(&commands.CleanupResult{Before: before, EventsPurged: 4, DeliveriesPurged: 2}, nil)

		r := gin.New()
		r.POST("/cleanup", api.NewMaintenanceHandler(m).Cleanup)
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/cleanup", nil, "")

		var body api.CleanupResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, int64(4), body.EventsPurged)
		assert.Equal(t, int64(2), body.DeliveriesPurged)
		assert.True(t, before.Equal(body.Before))
	})

	t.Run("異常系: ストア障害は503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := commandsmock.NewMockMaintenanceCommands(ctrl)
		m.EXPECT().Cleanup(gomock.Any()).Return(nil, errs.Mark(errors.New("refused"), errs.ErrStoreUnavailable))

		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.POST("/cleanup", api.NewMaintenanceHandler(m).Cleanup)
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/cleanup", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("DB疎通OKなら200", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", api.NewHealthHandler(stubPinger{}).Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("DB疎通NGなら503", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", api.NewHealthHandler(stubPinger{err: assert.AnError}).Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
