package requests

type EstimateRisk struct {
	Age        AgeInput `json:"age"`
	Gender     string   `json:"gender" validate:"omitempty,gender"`
	CancerType string   `json:"cancer_type" validate:"omitempty,cancer_type"`
	Stage      string   `json:"stage" validate:"omitempty,cancer_stage"`
}
