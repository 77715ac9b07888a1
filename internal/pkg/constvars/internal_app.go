package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX = "CNCR_PRD_SVC_"
)

const (
	ResourceAuth        = "auth"
	ResourceCases       = "cases"
	ResourcePredictions = "predictions"
	ResourceDashboards  = "dashboards"
	ResourceHome        = "home"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	CaseStoreMemory = "memory"
	CaseStoreMongo  = "mongo"
)

const (
	UserIDLength         = 9
	ControllerTimeout    = 10
	PredictionEventType  = "prediction.generated"
	CaseExportObjectPath = "case-exports/%s/%s.json"
)

const (
	MongoCollectionPatientCases = "patient_cases"
)

const (
	RedisKeySessionFormat = "cancer_prediction:session:%s"
)

const (
	JWTClaimSessionID = "session_id"
	JWTClaimExpiry    = "exp"
)

const (
	QueryParamSearch = "search"
	QueryParamStatus = "status"
	URLParamCaseID   = "caseID"
)

const (
	AuthModeLogin  = "login"
	AuthModeSignup = "signup"
)
