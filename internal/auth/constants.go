package auth

// Token kinds carried in the "kind" claim
const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
	KindReset   Kind = "reset"
)

// SigningMethodHS256 is the only accepted signing algorithm
const SigningMethodHS256 = "HS256"

// HTTP header values for bearer authentication
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Error and log messages
const (
	ErrMsgMissingToken  = "Authentication credentials were not provided."
	ErrMsgInvalidToken  = "Given token not valid for any token type"
	ErrMsgEmptySecret   = "token secret must not be empty"
	LogMsgTokenRejected = "Bearer token rejected"
)
