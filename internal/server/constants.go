package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Health response values
const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"

	MsgDatabaseUnavailable = "database connection failed"
	MsgGatewayDisconnected = "discord gateway not connected"
)

// HTTP header names
const (
	HeaderContentType    = "Content-Type"
	HeaderContentOptions = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueJSON                 = "application/json"
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}
