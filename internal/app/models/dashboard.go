package models

import "cancer-prediction-service/internal/pkg/dto/responses"

type SurvivabilityPoint struct {
	Month       int
	Probability int
}

type TreatmentStatus string

const (
	TreatmentStatusRecommended TreatmentStatus = "recommended"
	TreatmentStatusAlternative TreatmentStatus = "alternative"
	TreatmentStatusFallback    TreatmentStatus = "fallback"
)

type TreatmentSuggestion struct {
	Name          string
	Effectiveness int
	SideEffects   string
	Cost          string
	Duration      string
	Status        TreatmentStatus
}

type CancerDistribution struct {
	Type  string
	Count int
	Color string
}

type TreatmentResponse struct {
	Drug    string
	Success int
	Partial int
	Failure int
}

type RegionalIncidence struct {
	Region    string
	Cases     int
	Incidence float64
}

type CaseSummary struct {
	TotalCases           int
	CriticalCases        int
	StableCases          int
	AverageSurvivability int
}

func (p SurvivabilityPoint) ConvertIntoResponse() responses.SurvivabilityPoint {
	return responses.SurvivabilityPoint{Month: p.Month, Probability: p.Probability}
}

func (t TreatmentSuggestion) ConvertIntoResponse() responses.TreatmentSuggestion {
	return responses.TreatmentSuggestion{
		Name:          t.Name,
		Effectiveness: t.Effectiveness,
		SideEffects:   t.SideEffects,
		Cost:          t.Cost,
		Duration:      t.Duration,
		Status:        string(t.Status),
	}
}

func (d CancerDistribution) ConvertIntoResponse() responses.CancerDistribution {
	return responses.CancerDistribution{Type: d.Type, Count: d.Count, Color: d.Color}
}

func (t TreatmentResponse) ConvertIntoResponse() responses.TreatmentResponse {
	return responses.TreatmentResponse{Drug: t.Drug, Success: t.Success, Partial: t.Partial, Failure: t.Failure}
}

func (r RegionalIncidence) ConvertIntoResponse() responses.RegionalIncidence {
	return responses.RegionalIncidence{Region: r.Region, Cases: r.Cases, Incidence: r.Incidence}
}

func (s CaseSummary) ConvertIntoResponse() responses.CaseSummary {
	return responses.CaseSummary{
		TotalCases:           s.TotalCases,
		CriticalCases:        s.CriticalCases,
		StableCases:          s.StableCases,
		AverageSurvivability: s.AverageSurvivability,
	}
}
