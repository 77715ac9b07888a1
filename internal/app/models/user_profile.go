package models

import (
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/responses"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

type CancerType string

const (
	CancerTypeBreast     CancerType = "breast"
	CancerTypeLung       CancerType = "lung"
	CancerTypeProstate   CancerType = "prostate"
	CancerTypeColorectal CancerType = "colorectal"
	CancerTypeSkin       CancerType = "skin"
	CancerTypeOther      CancerType = "other"
)

type CancerStage string

const (
	CancerStage0   CancerStage = "0"
	CancerStageI   CancerStage = "I"
	CancerStageII  CancerStage = "II"
	CancerStageIII CancerStage = "III"
	CancerStageIV  CancerStage = "IV"
)

type TreatmentPreference string

const (
	PreferenceMinimizeSideEffects TreatmentPreference = "minimize-side-effects"
	PreferenceCostEffective       TreatmentPreference = "cost-effective"
	PreferenceAggressive          TreatmentPreference = "aggressive"
	PreferenceQualityOfLife       TreatmentPreference = "quality-of-life"
)

// UserProfile is the self-reported identity held for the lifetime of a session.
// CancerType, Stage and Preferences are only meaningful for patients.
type UserProfile struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Age         int                 `json:"age"`
	Gender      Gender              `json:"gender"`
	Role        Role                `json:"role"`
	CancerType  CancerType          `json:"cancer_type,omitempty"`
	Stage       CancerStage         `json:"stage,omitempty"`
	Preferences TreatmentPreference `json:"preferences,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func (u *UserProfile) IsPatient() bool {
	return u.Role == RolePatient
}

func (u *UserProfile) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// Normalize drops the fields that carry no meaning for the profile's role.
func (u *UserProfile) Normalize() {
	if u.Role != RolePatient {
		u.CancerType = ""
		u.Stage = ""
		u.Preferences = ""
		return
	}
	if u.CancerType == "" {
		u.Stage = ""
	}
}

// DisplayName prefixes doctors with their title.
func (u *UserProfile) DisplayName() string {
	if u.IsDoctor() {
		return constvars.DoctorNamePrefix + u.Name
	}
	return u.Name
}

func (u *UserProfile) ConvertIntoResponse() responses.UserProfile {
	return responses.UserProfile{
		ID:          u.ID,
		Name:        u.Name,
		Age:         u.Age,
		Gender:      string(u.Gender),
		Role:        string(u.Role),
		CancerType:  string(u.CancerType),
		Stage:       string(u.Stage),
		Preferences: string(u.Preferences),
	}
}
