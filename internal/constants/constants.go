package constants

// Session
const (
	SessionCookieName = "staff_admin_session"
	ContextKeyUserID  = "user_id"
)

// Validation limits
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MaxCyrillicName   = 30
)
