package models

import "cancer-prediction-service/internal/pkg/dto/responses"

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

type RiskEstimate struct {
	RiskPercent          int
	SurvivabilityPercent int
}

// Level buckets the risk the same way the dashboard badges do.
func (e RiskEstimate) Level() RiskLevel {
	switch {
	case e.RiskPercent < 30:
		return RiskLevelLow
	case e.RiskPercent < 70:
		return RiskLevelModerate
	default:
		return RiskLevelHigh
	}
}

func (e RiskEstimate) Label() string {
	switch e.Level() {
	case RiskLevelLow:
		return "Low Risk"
	case RiskLevelModerate:
		return "Moderate Risk"
	default:
		return "High Risk"
	}
}

func (e RiskEstimate) ConvertIntoResponse() responses.RiskEstimate {
	return responses.RiskEstimate{
		RiskPercent:          e.RiskPercent,
		SurvivabilityPercent: e.SurvivabilityPercent,
		RiskLevel:            string(e.Level()),
		RiskLabel:            e.Label(),
	}
}
