package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

const reasonFactorsNotArray = "factors must be an array"

// RiskHandler handles risk classification and recommendations
type RiskHandler struct {
	classifier  RiskClassifier
	recommender Recommender
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(classifier RiskClassifier, recommender Recommender) *RiskHandler {
	return &RiskHandler{
		classifier:  classifier,
		recommender: recommender,
	}
}

// ClassifyRisk classifies risk from factors
// @Summary Classify risk
// @Description Classify health risk from a list of factors
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body models.FactorsRequest true "Factors"
// @Success 200 {object} models.RiskResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /classify-risk [post]
func (h *RiskHandler) ClassifyRisk(c *gin.Context) {
	_, items, ok := bindFactors(c)
	if !ok {
		return
	}

	result, err := h.classifier.ClassifyRisk(c.Request.Context(), util.FactorNames(items))
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Recommendations generates advice from factors
// @Summary Generate recommendations
// @Description Generate recommendations from factors. risk_level is echoed back and defaults to "unknown".
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body models.FactorsRequest true "Factors and optional risk level"
// @Success 200 {object} models.RecommendationsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *RiskHandler) Recommendations(c *gin.Context) {
	req, items, ok := bindFactors(c)
	if !ok {
		return
	}

	recommendations, err := h.recommender.GetRecommendations(c.Request.Context(), util.FactorNames(items))
	if err != nil {
		respondFailure(c, err)
		return
	}

	var riskLevel interface{} = util.RiskLevelUnknown
	if !util.IsMissing(req.RiskLevel) && req.RiskLevel != false {
		riskLevel = req.RiskLevel
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		RiskLevel:       riskLevel,
		Factors:         req.Factors,
		Recommendations: recommendations,
		Status:          util.StatusOK,
	})
}

// bindFactors decodes the body and checks that factors is an array,
// answering 400 otherwise.
func bindFactors(c *gin.Context) (*models.FactorsRequest, []json.RawMessage, bool) {
	var req models.FactorsRequest
	if body, err := c.GetRawData(); err == nil {
		_ = json.Unmarshal(body, &req)
	}

	items, ok := util.DecodeArray(req.Factors)
	if !ok {
		respondInvalid(c, reasonFactorsNotArray)
		return nil, nil, false
	}

	return &req, items, true
}
