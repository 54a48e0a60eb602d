package models

import "time"

// Applicant defines an internship application (pendaftaran) based on the
// 'applicants' table. PositionID stays NULL until the applicant is accepted
// into a position.
type Applicant struct {
	ID                       int64             `json:"id" db:"id" example:"1"`
	FullName                 string            `json:"fullName" db:"full_name" example:"Budi Santoso"`
	Email                    string            `json:"email" db:"email" example:"budi@student.ac.id"`
	Phone                    string            `json:"phone" db:"phone" example:"081234567890"`
	Institution              string            `json:"institution" db:"institution" example:"Universitas Negeri Semarang"`
	Major                    string            `json:"major" db:"major" example:"Administrasi Pendidikan"`
	StartDate                time.Time         `json:"startDate" db:"start_date" example:"2026-02-02T00:00:00Z"`
	EndDate                  time.Time         `json:"endDate" db:"end_date" example:"2026-03-13T00:00:00Z"`
	DurationDays             int               `json:"durationDays" db:"duration_days" example:"30"` // Requested working days
	Status                   ApplicationStatus `json:"status" db:"status" example:"PENDING"`
	PositionID               *int64            `json:"positionId,omitempty" db:"position_id"`
	CoverLetterPath          string            `json:"coverLetterPath" db:"cover_letter_path"`
	RecommendationLetterPath string            `json:"recommendationLetterPath" db:"recommendation_letter_path"`
	PhotoPath                string            `json:"photoPath" db:"photo_path"`
	CreatedAt                time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time         `json:"updatedAt" db:"updated_at"`

	Position *Position `json:"position,omitempty"` // Relation, no db tag
}

// DocumentPaths returns the stored paths of the three uploaded attachments.
func (a *Applicant) DocumentPaths() []string {
	return []string{a.CoverLetterPath, a.RecommendationLetterPath, a.PhotoPath}
}
