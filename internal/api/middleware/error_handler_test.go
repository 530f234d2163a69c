package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), Recovery(zap.NewNop()), ErrorHandler(zap.NewNop()))
	r.GET("/", h)
	return r
}

func serve(r http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestErrorHandlerUsesAPIErrorStatus(t *testing.T) {
	wrapped := fmt.Errorf("staging: %w", NewAPIError(http.StatusRequestEntityTooLarge, ErrFileTooLarge))
	rr := serve(newErrorRouter(func(c *gin.Context) { _ = c.Error(wrapped) }))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"staging: file too large"}`, rr.Body.String())
}

func TestErrorHandlerDefaultsTo500(t *testing.T) {
	rr := serve(newErrorRouter(func(c *gin.Context) { _ = c.Error(errors.New("boom")) }))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"boom"}`, rr.Body.String())
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	rr := serve(newErrorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusTeapot, gin.H{"status": "custom"})
	}))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.JSONEq(t, `{"status":"custom"}`, rr.Body.String())
}

func TestRecoveryWithError(t *testing.T) {
	rr := serve(newErrorRouter(func(c *gin.Context) { panic(errors.New("nil answers")) }))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"nil answers"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
}
