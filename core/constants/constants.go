package constants

import "time"

// Timeouts
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 15 * time.Second

	// CalendarFetchTimeout bounds the Google Calendar events.list call.
	CalendarFetchTimeout = 30 * time.Second
)

// Calendar sync
const (
	// CalendarWindowDays is the size of the sync window, added as calendar
	// days so the window follows DST shifts.
	CalendarWindowDays = 7
)

// Database
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Context keys
const (
	ContextTokenData = "token_data"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Asynq task types
const (
	TaskCleanupOAuthStates = "auth:cleanup_oauth_states"
)
