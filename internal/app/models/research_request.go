package models

import "time"

// ResearchRequest defines a research-permit application (penelitian) based on
// the 'research_requests' table. It carries its own status machine with no
// quota linkage.
type ResearchRequest struct {
	ID             int64             `json:"id" db:"id" example:"1"`
	FullName       string            `json:"fullName" db:"full_name" example:"Dewi Lestari"`
	IdentityNumber string            `json:"identityNumber" db:"identity_number" example:"2110191023"` // NIM/NIP/NIK
	Email          string            `json:"email" db:"email" example:"dewi@kampus.ac.id"`
	Phone          string            `json:"phone" db:"phone" example:"081298765432"`
	Institution    string            `json:"institution" db:"institution" example:"Universitas Diponegoro"`
	Title          string            `json:"title" db:"title" example:"Efektivitas Pembelajaran Daring"`
	Subject        string            `json:"subject" db:"subject" example:"Pendidikan Dasar"`
	StartDate      time.Time         `json:"startDate" db:"start_date"`
	EndDate        time.Time         `json:"endDate" db:"end_date"`
	Status         ApplicationStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" db:"updated_at"`
}
