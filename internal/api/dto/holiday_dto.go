package dto

import "time"

// HolidayCreateRequest payload for adding a holiday.
type HolidayCreateRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// HolidayResponse is one company holiday.
type HolidayResponse struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
