package responses

type UserProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Role        string `json:"role"`
	CancerType  string `json:"cancer_type,omitempty"`
	Stage       string `json:"stage,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

type CreateSession struct {
	Token       string      `json:"token"`
	ExpiresAt   string      `json:"expires_at"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	User        UserProfile `json:"user"`
}

type Home struct {
	View     string       `json:"view"`
	Badge    string       `json:"badge,omitempty"`
	Title1   string       `json:"title1,omitempty"`
	Title2   string       `json:"title2,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	User     *UserProfile `json:"user,omitempty"`
}
