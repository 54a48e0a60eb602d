package dto

import (
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
)

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02"

// CreateApplicantRequest represents the public internship application form.
// Dates travel as YYYY-MM-DD strings; the three attachments arrive as
// multipart files alongside these fields.
type CreateApplicantRequest struct {
	FullName     string `form:"fullName" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Phone        string `form:"phone" binding:"required"`
	Institution  string `form:"institution" binding:"required"`
	Major        string `form:"major" binding:"required"`
	StartDate    string `form:"startDate" binding:"required,datetime=2006-01-02"`
	DurationDays int    `form:"durationDays" binding:"required,min=1"`
}

// UpdateApplicantStatusRequest represents an admin review decision
type UpdateApplicantStatusRequest struct {
	Status     models.ApplicationStatus `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
	PositionID *int64                   `json:"positionId,omitempty" binding:"omitempty,min=1"`
}

// UpdateApplicantDatesRequest represents an admin edit of the internship period
type UpdateApplicantDatesRequest struct {
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02"`
	DurationDays int    `json:"durationDays" binding:"required,min=1"`
}

// ApplicantResponse represents an applicant record for API consumers
type ApplicantResponse struct {
	ID                       int64                    `json:"id" example:"1"`
	FullName                 string                   `json:"fullName" example:"Budi Santoso"`
	Email                    string                   `json:"email" example:"budi@student.ac.id"`
	Phone                    string                   `json:"phone" example:"081234567890"`
	Institution              string                   `json:"institution" example:"Universitas Negeri Semarang"`
	Major                    string                   `json:"major" example:"Administrasi Pendidikan"`
	StartDate                string                   `json:"startDate" example:"2026-02-02"`
	EndDate                  string                   `json:"endDate" example:"2026-03-13"`
	DurationDays             int                      `json:"durationDays" example:"30"`
	Status                   models.ApplicationStatus `json:"status" example:"PENDING"`
	PositionID               *int64                   `json:"positionId,omitempty"`
	Position                 *PositionResponse        `json:"position,omitempty"`
	CoverLetterPath          string                   `json:"coverLetterPath"`
	RecommendationLetterPath string                   `json:"recommendationLetterPath"`
	PhotoPath                string                   `json:"photoPath"`
	CreatedAt                time.Time                `json:"createdAt"`
}

// FromApplicant converts a models.Applicant to an ApplicantResponse
func FromApplicant(applicant *models.Applicant) ApplicantResponse {
	if applicant == nil {
		return ApplicantResponse{}
	}
	response := ApplicantResponse{
		ID:                       applicant.ID,
		FullName:                 applicant.FullName,
		Email:                    applicant.Email,
		Phone:                    applicant.Phone,
		Institution:              applicant.Institution,
		Major:                    applicant.Major,
		StartDate:                applicant.StartDate.Format(DateFormat),
		EndDate:                  applicant.EndDate.Format(DateFormat),
		DurationDays:             applicant.DurationDays,
		Status:                   applicant.Status,
		PositionID:               applicant.PositionID,
		CoverLetterPath:          applicant.CoverLetterPath,
		RecommendationLetterPath: applicant.RecommendationLetterPath,
		PhotoPath:                applicant.PhotoPath,
		CreatedAt:                applicant.CreatedAt,
	}
	if applicant.Position != nil {
		position := FromPosition(applicant.Position)
		response.Position = &position
	}
	return response
}

// FromApplicants converts a slice of applicants to responses
func FromApplicants(applicants []*models.Applicant) []ApplicantResponse {
	responses := make([]ApplicantResponse, 0, len(applicants))
	for _, applicant := range applicants {
		responses = append(responses, FromApplicant(applicant))
	}
	return responses
}

// ApplicantListResponse is the paginated applicant listing
type ApplicantListResponse struct {
	Applicants []ApplicantResponse `json:"applicants"`
	Pagination PaginationInfo      `json:"pagination"`
}

// EndDateResponse represents a working-day end date calculation result
type EndDateResponse struct {
	StartDate   string `json:"startDate" example:"2026-02-02"`
	WorkingDays int    `json:"workingDays" example:"30"`
	EndDate     string `json:"endDate" example:"2026-03-13"`
}
