package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles health check requests
// @Summary Health check
// @Description Check that the profiler is running and see its main endpoint
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:      util.StatusOK,
		Service:     "AI-Powered Health Risk Profiler",
		Endpoint:    "/health-analysis",
		Method:      http.MethodPost,
		Description: "Upload an image with health data to get complete analysis",
	})
}
