package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// ErrNoTextRecognized is returned when OCR finds no text in the image
var ErrNoTextRecognized = errors.New("no text recognized in image")

// AnalysisService runs the full image-to-recommendations pipeline
type AnalysisService struct {
	ocrService            *OCRService
	factorService         *FactorService
	riskService           *RiskService
	recommendationService *RecommendationService
	logger                *util.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(ocrService *OCRService, factorService *FactorService, riskService *RiskService, recommendationService *RecommendationService) *AnalysisService {
	return &AnalysisService{
		ocrService:            ocrService,
		factorService:         factorService,
		riskService:           riskService,
		recommendationService: recommendationService,
		logger:                util.NewLogger("AnalysisService"),
	}
}

// AnalyzeImage extracts the survey from an image and profiles it. Profiles
// with more than half of the required fields missing stop early with an
// incomplete_profile status.
func (as *AnalysisService) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.HealthAnalysisResponse, error) {
	as.logger.Start("Health Analysis")
	defer as.logger.End("Health Analysis")

	// Step 1: OCR
	as.logger.Section("Step 1: OCR")
	text, err := as.ocrService.ExtractText(ctx, image, mimeType)
	if err != nil {
		as.logger.Error("Failed to extract text", err)
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoTextRecognized
	}

	// Step 2: Parse answers
	as.logger.Section("Step 2: Parsing Answers")
	answers, err := as.ocrService.ParseAnswersFromText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}

	missing := util.MissingFields(answers)
	if len(missing)*2 > len(util.RequiredFields) {
		as.logger.KeyValue("Incomplete profile", "missing_fields", missing)
		return &models.HealthAnalysisResponse{
			Status:        util.StatusIncompleteProfile,
			Reason:        ">50% fields missing",
			Answers:       answers,
			MissingFields: missing,
		}, nil
	}

	// Step 3: Factors
	as.logger.Section("Step 3: Extracting Factors")
	factorResult, err := as.factorService.ExtractFactors(ctx, answers)
	if err != nil {
		return nil, fmt.Errorf("failed to extract factors: %w", err)
	}

	// Step 4: Risk
	as.logger.Section("Step 4: Classifying Risk")
	risk, err := as.riskService.ClassifyRisk(ctx, factorResult.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to classify risk: %w", err)
	}

	// Step 5: Recommendations
	as.logger.Section("Step 5: Generating Recommendations")
	recommendations, err := as.recommendationService.GetRecommendations(ctx, factorResult.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	as.logger.Success("Health analysis completed")

	score := risk.Score
	return &models.HealthAnalysisResponse{
		Status:          util.StatusOK,
		Answers:         answers,
		MissingFields:   missing,
		Factors:         factorResult.Factors,
		Confidence:      factorResult.Confidence,
		RiskLevel:       risk.RiskLevel,
		Score:           &score,
		Rationale:       risk.Rationale,
		Recommendations: recommendations,
	}, nil
}
