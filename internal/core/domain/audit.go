package domain

import "time"

// Audit actions recorded for authentication activity.
const (
	AuditRegister    = "register"
	AuditLoginOK     = "login_ok"
	AuditLoginFailed = "login_failed"
	AuditLogout      = "logout"
)

// AuthEvent is a single entry in the security audit trail.
type AuthEvent struct {
	Action    string
	Subject   string // email presented by the caller
	AccountID string // empty when the attempt never resolved to an account
	Timestamp time.Time
}
