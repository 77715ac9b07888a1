package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionIDKey     = "session_id"
	LoggingUserIDKey        = "user_id"
	LoggingUserRoleKey      = "user_role"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingOperationKey     = "operation"
	LoggingRiskPercentKey   = "risk_percent"
	LoggingSurvivabilityKey = "survivability_percent"
	LoggingCaseCountKey     = "case_count"
	LoggingCaseIDKey        = "case_id"
	LoggingSearchTextKey    = "search_text"
	LoggingStatusFilterKey  = "status_filter"
	LoggingObjectNameKey    = "object_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingQueueNameKey     = "queue_name"
	LoggingViewKey          = "view"
)
