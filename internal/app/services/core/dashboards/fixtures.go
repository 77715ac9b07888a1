package dashboards

import "cancer-prediction-service/internal/app/models"

func defaultSurvivabilityCurve() []models.SurvivabilityPoint {
	return []models.SurvivabilityPoint{
		{Month: 0, Probability: 100},
		{Month: 6, Probability: 95},
		{Month: 12, Probability: 89},
		{Month: 18, Probability: 85},
		{Month: 24, Probability: 82},
		{Month: 36, Probability: 78},
		{Month: 48, Probability: 75},
		{Month: 60, Probability: 72},
	}
}

func defaultTreatmentSuggestions() []models.TreatmentSuggestion {
	return []models.TreatmentSuggestion{
		{Name: "Targeted Therapy", Effectiveness: 87, SideEffects: "Low", Cost: "High", Duration: "6-12 months", Status: models.TreatmentStatusRecommended},
		{Name: "Immunotherapy", Effectiveness: 74, SideEffects: "Moderate", Cost: "Very High", Duration: "3-6 months", Status: models.TreatmentStatusAlternative},
		{Name: "Chemotherapy", Effectiveness: 65, SideEffects: "High", Cost: "Moderate", Duration: "4-8 months", Status: models.TreatmentStatusFallback},
	}
}

func defaultCancerDistribution() []models.CancerDistribution {
	return []models.CancerDistribution{
		{Type: "Breast", Count: 145, Color: "#FF6B6B"},
		{Type: "Lung", Count: 128, Color: "#4ECDC4"},
		{Type: "Prostate", Count: 98, Color: "#45B7D1"},
		{Type: "Colorectal", Count: 87, Color: "#96CEB4"},
		{Type: "Skin", Count: 76, Color: "#FFEAA7"},
		{Type: "Other", Count: 112, Color: "#DDA0DD"},
	}
}

func defaultTreatmentResponse() []models.TreatmentResponse {
	return []models.TreatmentResponse{
		{Drug: "Targeted Therapy", Success: 87, Partial: 8, Failure: 5},
		{Drug: "Immunotherapy", Success: 74, Partial: 15, Failure: 11},
		{Drug: "Chemotherapy", Success: 65, Partial: 20, Failure: 15},
		{Drug: "Radiation", Success: 78, Partial: 12, Failure: 10},
	}
}

func defaultRegionalIncidence() []models.RegionalIncidence {
	return []models.RegionalIncidence{
		{Region: "North Delhi", Cases: 234, Incidence: 12.5},
		{Region: "South Delhi", Cases: 189, Incidence: 9.8},
		{Region: "Mumbai Central", Cases: 298, Incidence: 15.2},
		{Region: "Bangalore IT", Cases: 156, Incidence: 7.9},
		{Region: "Chennai Metro", Cases: 203, Incidence: 11.3},
	}
}
