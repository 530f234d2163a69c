package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// respondInvalid reports a validation failure detected before delegation
func respondInvalid(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status: util.StatusError,
		Reason: reason,
	})
}

// respondFailure reports a delegate failure
func respondFailure(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Status:  util.StatusError,
		Message: err.Error(),
	})
}
