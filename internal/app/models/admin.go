package models

import "time"

// Admin defines the admin account model based on the 'admins' table
type Admin struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the admin
	Username  string    `json:"username" db:"username" example:"admin"`                   // Login username (unique)
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	FullName  string    `json:"fullName" db:"full_name" example:"Siti Rahayu"`            // Admin's full name
	Jabatan   string    `json:"jabatan" db:"jabatan" example:"Kepala Bidang Pembinaan"`   // Office title
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the account was last updated
}
