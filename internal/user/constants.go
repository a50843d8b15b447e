package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cached accounts
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Account Rules
// ============================================================================

const (
	PasswordMinLength = 8
	PasswordMaxBytes  = 72 // bcrypt input limit
	UsernameMinLength = 3
	UsernameMaxLength = 150
)

// ResetTokenQueryParam is the query parameter carrying the reset token in emailed links
const ResetTokenQueryParam = "token"

// PasswordResetSubject is the subject line of password reset emails
const PasswordResetSubject = "ChoreQuest password reset"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserRegistered       = "User registered"
	LogMsgLoginSucceeded       = "Login succeeded"
	LogMsgLoginFailed          = "Login failed"
	LogMsgTokenRefreshed       = "Token refreshed"
	LogMsgPasswordResetSent    = "Password reset email sent"
	LogMsgPasswordResetDone    = "Password reset completed"
	LogErrFailedToCreateUser   = "Failed to create user"
	LogErrFailedToSendReset    = "Failed to send password reset email"
	LogErrFailedToHashPassword = "Failed to hash password"
)
