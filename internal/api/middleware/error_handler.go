package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// APIError carries the HTTP status for an error forwarded with c.Error
type APIError struct {
	Status int
	Err    error
}

// NewAPIError wraps err with an HTTP status
func NewAPIError(status int, err error) *APIError {
	return &APIError{Status: status, Err: err}
}

func (e *APIError) Error() string {
	return e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorHandler renders errors attached to the context as
// {status:"error", message}. Errors without an APIError become 500s.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			status = apiErr.Status
		}

		logger.Error("Request failed",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err))

		c.AbortWithStatusJSON(status, models.ErrorResponse{
			Status:  util.StatusError,
			Message: err.Error(),
		})
	}
}

// Recovery turns panics into 500 {status:"error", message}
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		message := fmt.Sprint(recovered)
		if err, ok := recovered.(error); ok {
			message = err.Error()
		}

		logger.Error("Recovered from panic",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  util.StatusError,
			Message: message,
		})
	})
}
