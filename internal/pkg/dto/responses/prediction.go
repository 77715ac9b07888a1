package responses

type RiskEstimate struct {
	RiskPercent          int    `json:"risk_percent"`
	SurvivabilityPercent int    `json:"survivability_percent"`
	RiskLevel            string `json:"risk_level"`
	RiskLabel            string `json:"risk_label"`
}
