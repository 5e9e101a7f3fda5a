package httperr

import (
	"net/http"

	"barbershop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var classes = []struct {
	class  error
	status int
	msg    string
}{
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "Time slot is no longer available"},
	{errs.ErrAlreadyCancelled, http.StatusConflict, "Appointment is already cancelled"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	{errs.ErrCorruptData, http.StatusInternalServerError, "Internal server error"},
}

// Status resolves the HTTP status and public message for a use case error.
func Status(err error) (int, string) {
	for _, c := range classes {
		if errs.Is(err, c.class) {
			return c.status, c.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError maps the error class to a response. Validation errors
// carry their reason as detail.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Status(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}
