package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ==="
	LogSection = "--- %s ---"
)

// Survey fields
const (
	FieldAge      = "age"
	FieldSmoker   = "smoker"
	FieldExercise = "exercise"
	FieldDiet     = "diet"
	FieldAlcohol  = "alcohol"
	FieldSleep    = "sleep"
)

// RequiredFields lists the survey answers every profile needs, in report order
var RequiredFields = []string{FieldAge, FieldSmoker, FieldExercise, FieldDiet}

// Confidence reported by /parse
const (
	ConfidenceJSONAnswers = 0.99
	ConfidenceParsedText  = 0.95
)

// Risk factors
const (
	FactorSmoking     = "smoking"
	FactorPoorDiet    = "poor diet"
	FactorLowExercise = "low exercise"
	FactorAdvancedAge = "advanced age"
	FactorMiddleAge   = "middle age"
	FactorHighAlcohol = "high alcohol intake"
	FactorPoorSleep   = "poor sleep"
)

// Risk levels
const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"
	RiskLevelUnknown  = "unknown"
)

// Risk score thresholds
const (
	HighRiskScore     = 60
	ModerateRiskScore = 30
	MaxRiskScore      = 100
)

// Response statuses
const (
	StatusOK                = "ok"
	StatusError             = "error"
	StatusIncompleteProfile = "incomplete_profile"
)
