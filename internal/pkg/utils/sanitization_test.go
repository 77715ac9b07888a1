package utils

import (
	"cancer-prediction-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateSessionRequest(t *testing.T) {
	t.Run("Trims And Normalizes Case", func(t *testing.T) {
		request := &requests.CreateSession{
			Mode:        "  SignUp ",
			Name:        "  Jane Doe  ",
			Age:         " 42 ",
			Gender:      " Female",
			Role:        "PATIENT ",
			CancerType:  " Breast ",
			Stage:       " iii ",
			Preferences: " Quality-Of-Life ",
		}

		SanitizeCreateSessionRequest(request)

		assert.Equal(t, "signup", request.Mode)
		assert.Equal(t, "Jane Doe", request.Name, "name keeps its casing")
		assert.Equal(t, requests.AgeInput("42"), request.Age)
		assert.Equal(t, "female", request.Gender)
		assert.Equal(t, "patient", request.Role)
		assert.Equal(t, "breast", request.CancerType)
		assert.Equal(t, "III", request.Stage, "stage is upper-cased roman numerals")
		assert.Equal(t, "quality-of-life", request.Preferences)
	})

	t.Run("Empty Fields Stay Empty", func(t *testing.T) {
		request := &requests.CreateSession{Name: "   ", Age: "  "}

		SanitizeCreateSessionRequest(request)

		assert.Empty(t, request.Name)
		assert.Empty(t, request.Age)
		assert.Empty(t, request.Role)
		assert.Empty(t, request.Stage)
	})
}

func TestSanitizeEstimateRiskRequest(t *testing.T) {
	request := &requests.EstimateRisk{
		Age:        "  70",
		Gender:     "MALE ",
		CancerType: " LUNG",
		Stage:      "iv",
	}

	SanitizeEstimateRiskRequest(request)

	assert.Equal(t, requests.AgeInput("70"), request.Age)
	assert.Equal(t, "male", request.Gender)
	assert.Equal(t, "lung", request.CancerType)
	assert.Equal(t, "IV", request.Stage)
}

func TestSanitizeFindCasesRequest(t *testing.T) {
	t.Run("Search Keeps Casing", func(t *testing.T) {
		request := &requests.FindCases{Search: "  Sarah ", Status: " CRITICAL "}

		SanitizeFindCasesRequest(request)

		assert.Equal(t, "Sarah", request.Search)
		assert.Equal(t, "critical", request.Status)
	})

	t.Run("Blank Status", func(t *testing.T) {
		request := &requests.FindCases{Status: "   "}

		SanitizeFindCasesRequest(request)

		assert.Empty(t, request.Status)
	})
}
