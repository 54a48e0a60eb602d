package models

import "time"

// Position defines an internship slot category based on the 'positions' table
type Position struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Bidang Kurikulum"`
	Quota     int       `json:"quota" db:"quota" example:"3"`
	Filled    int       `json:"filled" db:"filled" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Remaining returns the number of open slots. Filled never exceeds Quota at
// write time, but clamp anyway so stale rows never render a negative value.
func (p *Position) Remaining() int {
	remaining := p.Quota - p.Filled
	if remaining < 0 {
		return 0
	}
	return remaining
}
