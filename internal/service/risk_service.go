package service

import (
	"context"
	"strings"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// factorWeights holds the score contribution of each known factor
var factorWeights = map[string]int{
	util.FactorSmoking:     35,
	util.FactorPoorDiet:    20,
	util.FactorLowExercise: 20,
	util.FactorAdvancedAge: 25,
	util.FactorMiddleAge:   10,
	util.FactorHighAlcohol: 15,
	util.FactorPoorSleep:   10,
}

// RiskService classifies risk from factors
type RiskService struct {
	logger *util.Logger
}

// NewRiskService creates a new risk service
func NewRiskService() *RiskService {
	return &RiskService{logger: util.NewLogger("RiskService")}
}

// ClassifyRisk sums factor weights into a 0-100 score and buckets it.
// Unknown and repeated factors add nothing.
func (rs *RiskService) ClassifyRisk(ctx context.Context, factors []string) (*models.RiskResult, error) {
	score := 0
	rationale := []string{}
	seen := make(map[string]bool, len(factors))

	for _, factor := range factors {
		key := strings.ToLower(strings.TrimSpace(factor))
		weight, known := factorWeights[key]
		if !known || seen[key] {
			continue
		}
		seen[key] = true
		score += weight
		rationale = append(rationale, key)
	}

	if score > util.MaxRiskScore {
		score = util.MaxRiskScore
	}

	result := &models.RiskResult{
		RiskLevel: riskLevel(score),
		Score:     score,
		Rationale: rationale,
	}

	rs.logger.KeyValue("Risk classified", "risk_level", result.RiskLevel, "score", score)
	return result, nil
}

func riskLevel(score int) string {
	switch {
	case score >= util.HighRiskScore:
		return util.RiskLevelHigh
	case score >= util.ModerateRiskScore:
		return util.RiskLevelModerate
	default:
		return util.RiskLevelLow
	}
}
