package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":             "is required",
	"min":                  "must be at least %s characters long",
	"max":                  "maximum at %s characters long",
	"numeric":              "must be a number",
	"oneof":                "must be one of [%s]",
	"gt":                   "must be greater than %s",
	"gte":                  "must be greater than or equal to %s",
	"lt":                   "must be less than %s",
	"lte":                  "must be less than or equal to %s",
	"gender":               "must be one of [male, female, other]",
	"user_role":            "must be either 'doctor' or 'patient'",
	"cancer_type":          "must be one of [breast, lung, prostate, colorectal, skin, other]",
	"cancer_stage":         "must be one of [0, I, II, III, IV]",
	"treatment_preference": "must be one of [minimize-side-effects, cost-effective, aggressive, quality-of-life]",
	"case_status":          "must be one of [all, active, critical, stable, monitoring]",
	"auth_mode":            "must be either 'login' or 'signup'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotLoggedIn                   = "you are not logged in, please sign in first"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientMissingInformation            = "Missing Information: Please fill in all required fields."
	ErrClientCaseNotFound                  = "patient case not found"
	ErrClientRouteNotFound                 = "the page you are looking for does not exist"
	ErrClientMethodNotAllowed              = "method not allowed"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientExportUnavailable             = "case export is not available right now"
)

// Error messages for developers
const (
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevValidationFailed           = "input validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "failed to parse JSON"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevMissingRequestID           = "request id is missing from context"
	ErrDevMissingProfileInformation  = "profile submission is missing name or age"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate session token"
	ErrDevSessionNotFound            = "session not found or already cleared"
	ErrDevSessionMissingFromContext  = "session is missing from request context"
	ErrDevRoleTypeDoesntMatch        = "user role does not match the required role"
	ErrDevCaseNotFound               = "patient case %s not found"
	ErrDevRouteNotFound              = "route %s not found"
	ErrDevMethodNotAllowed           = "method %s not allowed on %s"
	ErrDevInvalidStatusFilter        = "status filter %q is not supported"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToCountDocuments   = "failed to count documents"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRabbitMQFailedToPublish    = "failed to publish message to queue %s"
	ErrDevExporterNotConfigured      = "case exporter is not configured"
	ErrDevPredictionCancelled        = "prediction was cancelled before completion"
	ErrDevTooManyRequests            = "client %s exceeded the request rate and is blocked"
	ErrDevPanicRecovered             = "recovered from panic"
)
