package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"riskprofiler/internal/api/middleware"
	"riskprofiler/internal/models"
	"riskprofiler/internal/service"
	"riskprofiler/internal/util"
)

// ImageField is the multipart field carrying the survey image
const ImageField = "image"

// AnalysisHandler handles image-based health analysis
type AnalysisHandler struct {
	analyzer HealthAnalyzer
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer HealthAnalyzer) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
	}
}

// Upload stages the uploaded image and runs the analysis. It needs the
// uploader installed by middleware.Upload.
// @Summary Analyze a survey image
// @Description Upload an image of a health survey. The image is transcribed, parsed, scored and turned into recommendations.
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Survey image"
// @Success 200 {object} models.HealthAnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /health-analysis [post]
func (h *AnalysisHandler) Upload(c *gin.Context) {
	uploader, ok := middleware.UploaderFrom(c)
	if !ok {
		_ = c.Error(middleware.ErrUploadNotInitialized)
		return
	}

	uploader.Single(ImageField, h.HandleHealthAnalysis)(c)
}

// HandleHealthAnalysis analyzes the staged image
func (h *AnalysisHandler) HandleHealthAnalysis(c *gin.Context) {
	file, ok := middleware.StagedFileFrom(c)
	if !ok {
		_ = c.Error(middleware.NewAPIError(http.StatusBadRequest, middleware.ErrFileMissing))
		return
	}

	image, err := file.Read()
	if err != nil {
		respondFailure(c, err)
		return
	}

	resp, err := h.analyzer.AnalyzeImage(c.Request.Context(), image, file.MimeType)
	if errors.Is(err, service.ErrNoTextRecognized) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Status: util.StatusError,
			Reason: "No text recognized in image",
		})
		return
	}
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
