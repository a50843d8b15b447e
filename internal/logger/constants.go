package logger

// ContextKeyRequestID is the context key holding the per-request ID
const ContextKeyRequestID = "request_id"

// Log levels accepted from LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats accepted from LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// RedactedValue replaces the value of any sensitive attribute
const RedactedValue = "[REDACTED]"

// sensitiveKeys are attribute keys whose values never reach the log output.
// Matching is case-insensitive on the final key segment.
var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"new_password":     {},
	"confirm_password": {},
	"password2":        {},
	"token":            {},
	"access":           {},
	"refresh":          {},
	"secret":           {},
	"authorization":    {},
}
