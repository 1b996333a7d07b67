package domain

import "time"

// Admin models an administrator account.
type Admin struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
