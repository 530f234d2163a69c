package service

import (
	"context"
	"strings"

	"riskprofiler/internal/util"
)

var factorAdvice = map[string]string{
	util.FactorSmoking:     "Quit smoking; ask your doctor about cessation programs",
	util.FactorPoorDiet:    "Reduce sugar and processed food; add vegetables and whole grains",
	util.FactorLowExercise: "Walk at least 30 minutes a day",
	util.FactorAdvancedAge: "Schedule regular health screenings",
	util.FactorMiddleAge:   "Get an annual check-up including blood pressure and cholesterol",
	util.FactorHighAlcohol: "Limit alcohol to no more than one drink a day",
	util.FactorPoorSleep:   "Aim for 7-9 hours of sleep with a consistent bedtime",
}

const maintenanceAdvice = "Maintain your current healthy habits and keep up routine check-ups"

// RecommendationService generates advice for risk factors
type RecommendationService struct {
	logger *util.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{logger: util.NewLogger("RecommendationService")}
}

// GetRecommendations returns one piece of advice per known factor, in factor
// order. With no known factors it returns general maintenance advice.
func (rs *RecommendationService) GetRecommendations(ctx context.Context, factors []string) ([]string, error) {
	recommendations := []string{}
	seen := make(map[string]bool, len(factors))

	for _, factor := range factors {
		key := strings.ToLower(strings.TrimSpace(factor))
		advice, known := factorAdvice[key]
		if !known || seen[key] {
			continue
		}
		seen[key] = true
		recommendations = append(recommendations, advice)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, maintenanceAdvice)
	}

	return recommendations, nil
}
