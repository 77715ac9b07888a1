package utils

import (
	"cancer-prediction-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateSessionRequest(input *requests.CreateSession) {
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
	input.Name = strings.TrimSpace(input.Name)
	input.Age = requests.AgeInput(input.Age.String())
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.CancerType = strings.ToLower(strings.TrimSpace(input.CancerType))
	input.Stage = strings.ToUpper(strings.TrimSpace(input.Stage))
	input.Preferences = strings.ToLower(strings.TrimSpace(input.Preferences))
}

func SanitizeEstimateRiskRequest(input *requests.EstimateRisk) {
	input.Age = requests.AgeInput(input.Age.String())
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.CancerType = strings.ToLower(strings.TrimSpace(input.CancerType))
	input.Stage = strings.ToUpper(strings.TrimSpace(input.Stage))
}

func SanitizeFindCasesRequest(input *requests.FindCases) {
	input.Search = strings.TrimSpace(input.Search)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
}
