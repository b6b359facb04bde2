package models

// Outcome is the decoded answer of the prediction service.
// It is either a Prediction (2xx) or a Rejection (any other status).
type Outcome interface {
	outcome()
}

// Prediction is the success body: {prediction, probability, message}
type Prediction struct {
	Prediction  float64 `json:"prediction"`
	Probability float64 `json:"probability"`
	Message     string  `json:"message"`
}

// Rejection is the failure body: {error}
type Rejection struct {
	StatusCode int    `json:"-"`
	Error      string `json:"error"`
}

func (Prediction) outcome() {}
func (Rejection) outcome()  {}

// HighRiskThreshold separates high from moderate risk for positive predictions
const HighRiskThreshold = 0.7

// RiskLevel is the display severity derived from a prediction
type RiskLevel string

const (
	RiskHigh     RiskLevel = "HIGH"
	RiskModerate RiskLevel = "MODERATE"
	RiskHealthy  RiskLevel = "HEALTHY"
)

// Positive reports whether the model flagged heart disease
func (p Prediction) Positive() bool {
	return p.Prediction == 1
}

// Risk classifies the prediction
func (p Prediction) Risk() RiskLevel {
	if !p.Positive() {
		return RiskHealthy
	}
	if p.Probability > HighRiskThreshold {
		return RiskHigh
	}
	return RiskModerate
}
