package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

func newAnalysisService(t *testing.T, engine OCREngine) *AnalysisService {
	t.Helper()
	ocr, err := NewOCRService(engine, 0)
	require.NoError(t, err)
	return NewAnalysisService(ocr, NewFactorService(), NewRiskService(), NewRecommendationService())
}

func TestExtractFactors(t *testing.T) {
	fs := NewFactorService()

	tests := []struct {
		name       string
		answers    models.Answers
		factors    []string
		confidence float64
	}{
		{
			name:       "high risk survey",
			answers:    models.Answers{"age": json.Number("42"), "smoker": true, "exercise": "rarely", "diet": "high sugar"},
			factors:    []string{util.FactorSmoking, util.FactorPoorDiet, util.FactorLowExercise},
			confidence: 0.9,
		},
		{
			name:       "healthy older adult",
			answers:    models.Answers{"age": 67, "smoker": "no", "exercise": "daily", "diet": "balanced"},
			factors:    []string{util.FactorAdvancedAge},
			confidence: 0.9,
		},
		{
			name:       "optional fields",
			answers:    models.Answers{"age": "50", "alcohol": "Daily", "sleep": "5 hours"},
			factors:    []string{util.FactorMiddleAge, util.FactorHighAlcohol, util.FactorPoorSleep},
			confidence: 0.6,
		},
		{
			name:       "nothing recognised",
			answers:    models.Answers{"height": 180},
			factors:    []string{},
			confidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.ExtractFactors(context.Background(), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.factors, got.Factors)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassifyRisk(t *testing.T) {
	rs := NewRiskService()

	tests := []struct {
		name      string
		factors   []string
		level     string
		score     int
		rationale []string
	}{
		{"empty", []string{}, util.RiskLevelLow, 0, []string{}},
		{"moderate", []string{"smoking"}, util.RiskLevelModerate, 35, []string{"smoking"}},
		{"high", []string{"smoking", "Poor Diet", "low exercise"}, util.RiskLevelHigh, 75, []string{"smoking", "poor diet", "low exercise"}},
		{"capped with unknown and duplicates", []string{"smoking", "smoking", "advanced age", "poor diet", "low exercise", "high alcohol intake", "vitamin d"}, util.RiskLevelHigh, 100, []string{"smoking", "advanced age", "poor diet", "low exercise", "high alcohol intake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rs.ClassifyRisk(context.Background(), tt.factors)
			require.NoError(t, err)
			assert.Equal(t, tt.level, got.RiskLevel)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.rationale, got.Rationale)
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	rs := NewRecommendationService()

	recs, err := rs.GetRecommendations(context.Background(), []string{"low exercise", "smoking", "smoking"})
	require.NoError(t, err)
	assert.Equal(t, []string{factorAdvice[util.FactorLowExercise], factorAdvice[util.FactorSmoking]}, recs)

	recs, err = rs.GetRecommendations(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{maintenanceAdvice}, recs)
}

func TestAnalyzeImage(t *testing.T) {
	as := newAnalysisService(t, &fakeEngine{text: "Age: 42\nSmoker: yes\nExercise: rarely\nDiet: high sugar"})

	resp, err := as.AnalyzeImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, util.StatusOK, resp.Status)
	assert.Empty(t, resp.MissingFields)
	assert.Equal(t, []string{"smoking", "poor diet", "low exercise"}, resp.Factors)
	assert.Equal(t, util.RiskLevelHigh, resp.RiskLevel)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 75, *resp.Score)
	assert.Len(t, resp.Recommendations, 3)
}

func TestAnalyzeImageIncompleteProfile(t *testing.T) {
	as := newAnalysisService(t, &fakeEngine{text: "Age: 42"})

	resp, err := as.AnalyzeImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, util.StatusIncompleteProfile, resp.Status)
	assert.Equal(t, ">50% fields missing", resp.Reason)
	assert.Equal(t, []string{"smoker", "exercise", "diet"}, resp.MissingFields)
	assert.Nil(t, resp.Score)
}

func TestAnalyzeImageHalfMissingProceeds(t *testing.T) {
	as := newAnalysisService(t, &fakeEngine{text: "Age: 30\nSmoker: no"})

	resp, err := as.AnalyzeImage(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, util.StatusOK, resp.Status)
	assert.Equal(t, util.RiskLevelLow, resp.RiskLevel)
}

func TestAnalyzeImageNoText(t *testing.T) {
	as := newAnalysisService(t, &fakeEngine{text: "   "})

	_, err := as.AnalyzeImage(context.Background(), []byte("img"), "image/png")
	assert.ErrorIs(t, err, ErrNoTextRecognized)
}
