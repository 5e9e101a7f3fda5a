//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", errs.Mark(errs.New("bad date"), errs.ErrValidation), http.StatusBadRequest, "Invalid request"},
		{"forbidden", errs.Mark(errs.New("not yours"), errs.ErrForbidden), http.StatusForbidden, "Forbidden"},
		{"not found", errs.Mark(errs.New("nothing"), errs.ErrNotFound), http.StatusNotFound, "Not found"},
		{"slot taken", errs.Mark(errs.New("taken"), errs.ErrSlotUnavailable), http.StatusConflict, "no longer available"},
		{"already cancelled", errs.Mark(errs.New("twice"), errs.ErrAlreadyCancelled), http.StatusConflict, "already cancelled"},
		{"store down", errs.Mark(errs.New("db"), errs.ErrStoreUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
		{"wrapped class survives", errs.Wrap(errs.Mark(errs.New("x"), errs.ErrForbidden), "cancel"), http.StatusForbidden, "Forbidden"},
		{"corrupt row is not retryable", errs.Mark(errs.New("bad availability"), errs.ErrCorruptData), http.StatusInternalServerError, "Internal server error"},
		{"unclassified", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Status(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, msg, tt.wantMsg)
		})
	}
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	httperr.AbortWithUseCaseError(c, errs.Mark(errs.New("date is in the past"), errs.ErrValidation))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invalid request"},"detail":{"reason":"date is in the past"}}`, rec.Body.String())
	assert.Len(t, c.Errors, 1)
}
