package requests

// CreateSession is the profile form submitted from the sign-in/sign-up screen.
// Age arrives as free text and is parsed leniently by the usecase.
type CreateSession struct {
	Mode        string   `json:"mode" validate:"omitempty,auth_mode"`
	Name        string   `json:"name"`
	Age         AgeInput `json:"age"`
	Gender      string   `json:"gender" validate:"omitempty,gender"`
	Role        string   `json:"role" validate:"omitempty,user_role"`
	CancerType  string   `json:"cancer_type" validate:"omitempty,cancer_type"`
	Stage       string   `json:"stage" validate:"omitempty,cancer_stage"`
	Preferences string   `json:"preferences" validate:"omitempty,treatment_preference"`
}
