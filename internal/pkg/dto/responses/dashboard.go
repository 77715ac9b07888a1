package responses

type SurvivabilityPoint struct {
	Month       int `json:"month"`
	Probability int `json:"probability"`
}

type TreatmentSuggestion struct {
	Name          string `json:"name"`
	Effectiveness int    `json:"effectiveness"`
	SideEffects   string `json:"side_effects"`
	Cost          string `json:"cost"`
	Duration      string `json:"duration"`
	Status        string `json:"status"`
}

type CancerDistribution struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type TreatmentResponse struct {
	Drug    string `json:"drug"`
	Success int    `json:"success"`
	Partial int    `json:"partial"`
	Failure int    `json:"failure"`
}

type RegionalIncidence struct {
	Region    string  `json:"region"`
	Cases     int     `json:"cases"`
	Incidence float64 `json:"incidence"`
}

type CaseSummary struct {
	TotalCases           int `json:"total_cases"`
	CriticalCases        int `json:"critical_cases"`
	StableCases          int `json:"stable_cases"`
	AverageSurvivability int `json:"average_survivability"`
}

type PatientDashboard struct {
	User              UserProfile           `json:"user"`
	Prediction        RiskEstimate          `json:"prediction"`
	SurvivabilityData []SurvivabilityPoint  `json:"survivability_data"`
	Treatments        []TreatmentSuggestion `json:"treatments"`
}

type DoctorDashboard struct {
	User               UserProfile          `json:"user"`
	Summary            CaseSummary          `json:"summary"`
	CancerDistribution []CancerDistribution `json:"cancer_distribution"`
	TreatmentResponse  []TreatmentResponse  `json:"treatment_response"`
	RegionalData       []RegionalIncidence  `json:"regional_data"`
}
