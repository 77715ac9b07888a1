package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	LoginSuccessTitle          = "Login Successful!"
	AccountCreatedTitle        = "Account Created!"
	WelcomeMessageFormat       = "Welcome %s"
	DoctorNamePrefix           = "Dr. "
	LogoutSuccessMessage       = "successfully logout"
	GetSessionSuccessMessage   = "get session successfully"
	PredictionSuccessMessage   = "Prediction Generated! AI analysis completed using advanced machine learning models."
	EstimateSuccessMessage     = "risk estimated successfully"
	GetCasesSuccessMessage     = "get patient cases successfully"
	GetCaseSuccessMessage      = "Opening detailed view for patient %s..."
	ExportCasesSuccessMessage  = "patient cases exported successfully"
	GetDashboardSuccessMessage = "get dashboard successfully"
	GetHomeSuccessMessage      = "get home successfully"
)

const (
	HeroBadge    = "Cancer Prediction Platform"
	HeroTitle1   = "AI-Powered Cancer"
	HeroTitle2   = "Risk Assessment"
	HeroSubtitle = "Advanced machine learning algorithms providing accurate cancer predictions and personalized treatment recommendations for better health outcomes."
)

const (
	ViewHero             = "hero"
	ViewPatientDashboard = "patient-dashboard"
	ViewDoctorDashboard  = "doctor-dashboard"
)
