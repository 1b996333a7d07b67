package domain

import "time"

// Holiday is a company-wide day off.
type Holiday struct {
	ID        int64
	Name      string
	Date      time.Time
	CreatedAt time.Time
}
