package models

import "time"

// Setting defines a key/value configuration row based on the 'settings' table
type Setting struct {
	Key       string    `json:"key" db:"key" example:"contact_email"`
	Value     string    `json:"value" db:"value" example:"magang@disdik.example.id"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
