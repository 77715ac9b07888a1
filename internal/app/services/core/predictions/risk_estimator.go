package predictions

import "cancer-prediction-service/internal/app/models"

const (
	minRiskPercent          = 5
	maxRiskPercent          = 95
	minSurvivabilityPercent = 15
	maxSurvivabilityPercent = 100

	baseRiskWithoutCancerType = 15
	survivabilityOffset       = 10
)

// EstimateRisk maps a self-reported profile to a synthetic risk and
// survivability score. It is pure: the same profile always yields the same
// estimate. A non-positive age contributes no age adjustment.
func EstimateRisk(profile models.UserProfile) models.RiskEstimate {
	risk := clamp(baseRisk(profile)+ageAdjustment(profile.Age)+genderAdjustment(profile), minRiskPercent, maxRiskPercent)

	// The +10 offset lets survivability exceed the plain complement of risk.
	survivability := clamp(100-risk+survivabilityOffset, minSurvivabilityPercent, maxSurvivabilityPercent)

	return models.RiskEstimate{
		RiskPercent:          risk,
		SurvivabilityPercent: survivability,
	}
}

func baseRisk(profile models.UserProfile) int {
	if profile.CancerType == "" {
		return baseRiskWithoutCancerType
	}

	switch profile.Stage {
	case models.CancerStageIV:
		return 85
	case models.CancerStageIII:
		return 65
	case models.CancerStageII:
		return 45
	default:
		return 25
	}
}

func ageAdjustment(age int) int {
	switch {
	case age > 65:
		return 10
	case age > 50:
		return 5
	default:
		return 0
	}
}

func genderAdjustment(profile models.UserProfile) int {
	if profile.Gender == models.GenderFemale && profile.CancerType == models.CancerTypeBreast {
		return -5
	}
	return 0
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
