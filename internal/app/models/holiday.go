package models

import "time"

// Holiday defines a non-working date based on the 'holidays' table. The table
// is the authoritative calendar for working-day calculations.
type Holiday struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Date        time.Time `json:"date" db:"holiday_date" example:"2026-08-17T00:00:00Z"`
	Description string    `json:"description" db:"description" example:"Hari Kemerdekaan"`
}
