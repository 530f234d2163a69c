package models

import "encoding/json"

// Answers maps survey field names to the values given by the user
type Answers map[string]interface{}

// ===== Parse Models =====

// ParseTextRequest carries raw survey text
type ParseTextRequest struct {
	Text string `json:"text" example:"Age: 42\nSmoker: yes\nExercise: rarely\nDiet: high sugar"`
}

// ParseResponse is returned by /parse
type ParseResponse struct {
	Answers       Answers  `json:"answers" swaggertype:"object"`
	MissingFields []string `json:"missing_fields"`
	Confidence    float64  `json:"confidence"`
}

// ===== Factor Models =====

// FactorResult is produced by factor extraction
type FactorResult struct {
	Factors    []string `json:"factors"`
	Confidence float64  `json:"confidence"`
}

// FactorsRequest carries a factor list. Factors stays raw so it can be
// validated as an array and echoed back untouched.
type FactorsRequest struct {
	Factors   json.RawMessage `json:"factors" swaggertype:"array,string"`
	RiskLevel interface{}     `json:"risk_level,omitempty" swaggertype:"string"`
}

// ===== Risk Models =====

// RiskResult is the risk classification output
type RiskResult struct {
	RiskLevel string   `json:"risk_level"`
	Score     int      `json:"score"`
	Rationale []string `json:"rationale"`
}

// ===== Recommendation Models =====

// RecommendationsResponse is returned by /recommendations
type RecommendationsResponse struct {
	RiskLevel       interface{}     `json:"risk_level" swaggertype:"string"`
	Factors         json.RawMessage `json:"factors" swaggertype:"array,string"`
	Recommendations []string        `json:"recommendations"`
	Status          string          `json:"status"`
}

// ===== Health Analysis Models =====

// HealthAnalysisResponse is returned by /health-analysis
type HealthAnalysisResponse struct {
	Status          string   `json:"status"`
	Reason          string   `json:"reason,omitempty"`
	Answers         Answers  `json:"answers,omitempty" swaggertype:"object"`
	MissingFields   []string `json:"missing_fields"`
	Factors         []string `json:"factors,omitempty"`
	Confidence      float64  `json:"confidence,omitempty"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	Score           *int     `json:"score,omitempty"`
	Rationale       []string `json:"rationale,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ===== Common Models =====

// HealthStatus is the static /health payload
type HealthStatus struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Endpoint    string `json:"endpoint"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// ErrorResponse is the error envelope. Validation failures set Reason,
// delegate failures set Message.
type ErrorResponse struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
