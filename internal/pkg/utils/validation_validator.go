package utils

import (
	"cancer-prediction-service/internal/app/models"
	"cancer-prediction-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("cancer_type", validateCancerType)
	validate.RegisterValidation("cancer_stage", validateCancerStage)
	validate.RegisterValidation("treatment_preference", validateTreatmentPreference)
	validate.RegisterValidation("case_status", validateCaseStatus)
	validate.RegisterValidation("auth_mode", validateAuthMode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func oneOf(value string, allowed ...string) bool {
	for _, each := range allowed {
		if value == each {
			return true
		}
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(),
		string(models.GenderMale),
		string(models.GenderFemale),
		string(models.GenderOther),
	)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), string(models.RoleDoctor), string(models.RolePatient))
}

func validateCancerType(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(),
		string(models.CancerTypeBreast),
		string(models.CancerTypeLung),
		string(models.CancerTypeProstate),
		string(models.CancerTypeColorectal),
		string(models.CancerTypeSkin),
		string(models.CancerTypeOther),
	)
}

func validateCancerStage(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(),
		string(models.CancerStage0),
		string(models.CancerStageI),
		string(models.CancerStageII),
		string(models.CancerStageIII),
		string(models.CancerStageIV),
	)
}

func validateTreatmentPreference(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(),
		string(models.PreferenceMinimizeSideEffects),
		string(models.PreferenceCostEffective),
		string(models.PreferenceAggressive),
		string(models.PreferenceQualityOfLife),
	)
}

func validateCaseStatus(fl validator.FieldLevel) bool {
	return IsValidStatusFilter(fl.Field().String())
}

func validateAuthMode(fl validator.FieldLevel) bool {
	return oneOf(strings.ToLower(fl.Field().String()), constvars.AuthModeLogin, constvars.AuthModeSignup)
}

// IsValidStatusFilter reports whether status is "all" or one of the case statuses.
func IsValidStatusFilter(status string) bool {
	return oneOf(status,
		string(models.CaseStatusAll),
		string(models.CaseStatusActive),
		string(models.CaseStatusCritical),
		string(models.CaseStatusStable),
		string(models.CaseStatusMonitoring),
	)
}
