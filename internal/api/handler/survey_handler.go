package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// SurveyHandler handles survey parsing and factor extraction
type SurveyHandler struct {
	parser    TextParser
	extractor FactorExtractor
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(parser TextParser, extractor FactorExtractor) *SurveyHandler {
	return &SurveyHandler{
		parser:    parser,
		extractor: extractor,
	}
}

// Parse accepts survey answers as JSON or raw text
// @Summary Parse survey answers
// @Description A JSON body containing any of age/smoker/exercise/diet is taken as the answers (confidence 0.99).
// @Description Otherwise text is read from {"text": "..."} or a text/plain body and parsed (confidence 0.95).
// @Tags Survey
// @Accept json,plain
// @Produce json
// @Param request body models.ParseTextRequest false "Survey answers or raw text"
// @Success 200 {object} models.ParseResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /parse [post]
func (h *SurveyHandler) Parse(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondFailure(c, err)
		return
	}

	var obj map[string]interface{}
	if c.ContentType() == gin.MIMEJSON {
		// Malformed JSON falls through to the text path and ends as "No input provided"
		obj, _ = util.DecodeObject(body)
	}

	if len(obj) > 0 && util.HasAnyRequiredField(obj) {
		answers := models.Answers(obj)
		c.JSON(http.StatusOK, models.ParseResponse{
			Answers:       answers,
			MissingFields: util.MissingFields(answers),
			Confidence:    util.ConfidenceJSONAnswers,
		})
		return
	}

	var rawText string
	if obj != nil {
		rawText, _ = obj["text"].(string)
	} else if c.ContentType() == gin.MIMEPlain {
		rawText = string(body)
	}

	if strings.TrimSpace(rawText) == "" {
		respondInvalid(c, "No input provided")
		return
	}

	answers, err := h.parser.ParseAnswersFromText(c.Request.Context(), rawText)
	if err != nil {
		respondFailure(c, err)
		return
	}
	if answers == nil {
		answers = models.Answers{}
	}

	c.JSON(http.StatusOK, models.ParseResponse{
		Answers:       answers,
		MissingFields: util.MissingFields(answers),
		Confidence:    util.ConfidenceParsedText,
	})
}

// ExtractFactors converts answers into risk factors
// @Summary Extract risk factors
// @Description Convert survey answers into an ordered list of risk factors
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body object true "Survey answers"
// @Success 200 {object} models.FactorResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /extract-factors [post]
func (h *SurveyHandler) ExtractFactors(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondFailure(c, err)
		return
	}

	obj, err := util.DecodeObject(body)
	if err != nil || len(obj) == 0 {
		respondInvalid(c, "Answers required as JSON body")
		return
	}

	result, err := h.extractor.ExtractFactors(c.Request.Context(), models.Answers(obj))
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FactorResult{
		Factors:    result.Factors,
		Confidence: result.Confidence,
	})
}
