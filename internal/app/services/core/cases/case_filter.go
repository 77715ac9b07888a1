package cases

import (
	"cancer-prediction-service/internal/app/models"
	"math"
	"strings"
)

// FilterCases keeps the cases whose status matches statusFilter and whose name
// or id contains searchText, ignoring case. An empty statusFilter or "all"
// matches every status. The input order is preserved and the input slice is
// never modified.
func FilterCases(patientCases []models.PatientCase, searchText string, statusFilter models.CaseStatus) []models.PatientCase {
	search := strings.ToLower(searchText)

	filtered := make([]models.PatientCase, 0, len(patientCases))
	for _, patientCase := range patientCases {
		if !matchesStatus(patientCase, statusFilter) {
			continue
		}
		if !matchesSearch(patientCase, search) {
			continue
		}
		filtered = append(filtered, patientCase)
	}
	return filtered
}

func matchesStatus(patientCase models.PatientCase, statusFilter models.CaseStatus) bool {
	if statusFilter == "" || statusFilter == models.CaseStatusAll {
		return true
	}
	return patientCase.Status == statusFilter
}

func matchesSearch(patientCase models.PatientCase, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(patientCase.Name), search) ||
		strings.Contains(strings.ToLower(patientCase.ID), search)
}

// SummarizeCases computes the totals shown on the doctor dashboard.
func SummarizeCases(patientCases []models.PatientCase) models.CaseSummary {
	summary := models.CaseSummary{TotalCases: len(patientCases)}
	if len(patientCases) == 0 {
		return summary
	}

	totalSurvivability := 0
	for _, patientCase := range patientCases {
		switch patientCase.Status {
		case models.CaseStatusCritical:
			summary.CriticalCases++
		case models.CaseStatusStable:
			summary.StableCases++
		}
		totalSurvivability += patientCase.Survivability
	}

	summary.AverageSurvivability = int(math.Round(float64(totalSurvivability) / float64(len(patientCases))))
	return summary
}
