package domain

import "time"

// Role is an account's relationship to a company.
type Role string

const (
	RoleNone      Role = "NONE"
	RoleRecruiter Role = "RECRUITER"
	RoleOwner     Role = "OWNER"
)

// Token carries metadata about an issued session token. Tokens are never
// persisted; this is the shape handed back to the boundary layer.
type Token struct {
	Value     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
