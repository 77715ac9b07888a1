package models

import "cancer-prediction-service/internal/pkg/dto/responses"

type CaseStatus string

const (
	CaseStatusActive     CaseStatus = "active"
	CaseStatusCritical   CaseStatus = "critical"
	CaseStatusStable     CaseStatus = "stable"
	CaseStatusMonitoring CaseStatus = "monitoring"
)

// CaseStatusAll is the filter value that matches every status.
const CaseStatusAll CaseStatus = "all"

type PatientCase struct {
	ID            string     `bson:"case_id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Age           int        `bson:"age" json:"age"`
	CancerType    string     `bson:"cancer_type" json:"cancer_type"`
	Stage         string     `bson:"stage" json:"stage"`
	RiskLevel     int        `bson:"risk_level" json:"risk_level"`
	LastVisit     string     `bson:"last_visit" json:"last_visit"`
	Status        CaseStatus `bson:"status" json:"status"`
	Survivability int        `bson:"survivability" json:"survivability"`
	Position      int        `bson:"position" json:"-"`
}

func (c PatientCase) ConvertIntoResponse() responses.PatientCase {
	return responses.PatientCase{
		ID:            c.ID,
		Name:          c.Name,
		Age:           c.Age,
		CancerType:    c.CancerType,
		Stage:         c.Stage,
		RiskLevel:     c.RiskLevel,
		LastVisit:     c.LastVisit,
		Status:        string(c.Status),
		Survivability: c.Survivability,
	}
}
