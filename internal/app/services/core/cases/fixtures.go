package cases

import "cancer-prediction-service/internal/app/models"

// DefaultPatientCases returns a fresh copy of the demonstration case list in
// display order.
func DefaultPatientCases() []models.PatientCase {
	return []models.PatientCase{
		{ID: "P001", Name: "Sarah Johnson", Age: 45, CancerType: "Breast", Stage: "II", RiskLevel: 65, LastVisit: "2024-01-15", Status: models.CaseStatusActive, Survivability: 78, Position: 0},
		{ID: "P002", Name: "Michael Chen", Age: 58, CancerType: "Lung", Stage: "III", RiskLevel: 82, LastVisit: "2024-01-14", Status: models.CaseStatusCritical, Survivability: 45, Position: 1},
		{ID: "P003", Name: "Emma Davis", Age: 34, CancerType: "Skin", Stage: "I", RiskLevel: 25, LastVisit: "2024-01-13", Status: models.CaseStatusStable, Survivability: 92, Position: 2},
		{ID: "P004", Name: "Robert Wilson", Age: 67, CancerType: "Prostate", Stage: "II", RiskLevel: 55, LastVisit: "2024-01-12", Status: models.CaseStatusActive, Survivability: 85, Position: 3},
		{ID: "P005", Name: "Lisa Anderson", Age: 52, CancerType: "Colorectal", Stage: "III", RiskLevel: 70, LastVisit: "2024-01-11", Status: models.CaseStatusMonitoring, Survivability: 68, Position: 4},
	}
}
