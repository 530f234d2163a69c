package service

import (
	"context"
	"math"
	"strings"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// Keyword lists for free-text answers
var (
	poorDietKeywords     = []string{"sugar", "sugary", "junk", "fast food", "fried", "processed", "soda", "unhealthy", "poor"}
	lowExerciseKeywords  = []string{"rarely", "never", "none", "no exercise", "sedentary", "seldom", "inactive", "little"}
	heavyAlcoholKeywords = []string{"heavy", "daily", "every day", "often", "frequent", "binge"}
	poorSleepKeywords    = []string{"poor", "bad", "insomnia", "restless", "little"}
)

const (
	baseFactorConfidence  = 0.5
	fieldConfidenceWeight = 0.1
	maxFactorConfidence   = 0.95
	minHealthySleepHours  = 6
)

// FactorService converts survey answers into risk factors
type FactorService struct {
	logger *util.Logger
}

// NewFactorService creates a new factor service
func NewFactorService() *FactorService {
	return &FactorService{logger: util.NewLogger("FactorService")}
}

// ExtractFactors maps answers to risk factors. Confidence grows with the
// number of required fields that could be interpreted.
func (fs *FactorService) ExtractFactors(ctx context.Context, answers models.Answers) (*models.FactorResult, error) {
	factors := []string{}
	recognised := 0

	if smoker, ok := util.ToBool(answers[util.FieldSmoker]); ok {
		recognised++
		if smoker {
			factors = append(factors, util.FactorSmoking)
		}
	}

	if diet, ok := util.ToText(answers[util.FieldDiet]); ok {
		recognised++
		if containsAny(diet, poorDietKeywords) {
			factors = append(factors, util.FactorPoorDiet)
		}
	}

	if exercise, ok := util.ToText(answers[util.FieldExercise]); ok {
		recognised++
		if exercise == "0" || containsAny(exercise, lowExerciseKeywords) {
			factors = append(factors, util.FactorLowExercise)
		}
	}

	if age, ok := util.ToNumber(answers[util.FieldAge]); ok && age > 0 {
		recognised++
		switch {
		case age >= 60:
			factors = append(factors, util.FactorAdvancedAge)
		case age >= 45:
			factors = append(factors, util.FactorMiddleAge)
		}
	}

	if alcohol, ok := util.ToText(answers[util.FieldAlcohol]); ok && containsAny(alcohol, heavyAlcoholKeywords) {
		factors = append(factors, util.FactorHighAlcohol)
	}

	if poorSleep(answers[util.FieldSleep]) {
		factors = append(factors, util.FactorPoorSleep)
	}

	confidence := math.Min(baseFactorConfidence+fieldConfidenceWeight*float64(recognised), maxFactorConfidence)
	confidence = math.Round(confidence*100) / 100

	fs.logger.KeyValue("Factors extracted", "factors", factors, "recognised_fields", recognised)

	return &models.FactorResult{Factors: factors, Confidence: confidence}, nil
}

func poorSleep(v interface{}) bool {
	if hours, ok := util.ToNumber(v); ok {
		return hours > 0 && hours < minHealthySleepHours
	}
	if text, ok := util.ToText(v); ok {
		if hours, ok := util.ToNumber(integerPattern.FindString(text)); ok {
			return hours > 0 && hours < minHealthySleepHours
		}
		return containsAny(text, poorSleepKeywords)
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
