package requests

type FindCases struct {
	Search string `json:"search"`
	Status string `json:"status" validate:"omitempty,case_status"`
}
