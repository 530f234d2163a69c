package handler

import (
	"context"

	"riskprofiler/internal/models"
)

// TextParser turns raw survey text into answers
type TextParser interface {
	ParseAnswersFromText(ctx context.Context, text string) (models.Answers, error)
}

// FactorExtractor derives risk factors from answers
type FactorExtractor interface {
	ExtractFactors(ctx context.Context, answers models.Answers) (*models.FactorResult, error)
}

// RiskClassifier classifies risk from factors
type RiskClassifier interface {
	ClassifyRisk(ctx context.Context, factors []string) (*models.RiskResult, error)
}

// Recommender generates advice from factors
type Recommender interface {
	GetRecommendations(ctx context.Context, factors []string) ([]string, error)
}

// HealthAnalyzer profiles a survey image end to end
type HealthAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.HealthAnalysisResponse, error)
}
