package domain

import "time"

// Role differentiates administrator and employee tokens.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// AccountType selects which credential store an auth flow targets.
type AccountType string

const (
	AccountTypeAdmin    AccountType = "admin"
	AccountTypeEmployee AccountType = "employee"
)

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	SubjectID int64
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// OTPRecord is the ephemeral one-time code kept per email address.
type OTPRecord struct {
	Code     string `json:"code"`
	Verified bool   `json:"verified"`
}
