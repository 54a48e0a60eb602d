package dto

import (
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
)

// CreateResearchRequest represents the public research-permit form
type CreateResearchRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	IdentityNumber string `json:"identityNumber" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Institution    string `json:"institution" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Subject        string `json:"subject" binding:"required"`
	StartDate      string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// UpdateResearchStatusRequest represents an admin review decision
type UpdateResearchStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// ResearchResponse represents a research request record
type ResearchResponse struct {
	ID             int64                    `json:"id" example:"1"`
	FullName       string                   `json:"fullName" example:"Dewi Lestari"`
	IdentityNumber string                   `json:"identityNumber" example:"2110191023"`
	Email          string                   `json:"email" example:"dewi@kampus.ac.id"`
	Phone          string                   `json:"phone" example:"081298765432"`
	Institution    string                   `json:"institution" example:"Universitas Diponegoro"`
	Title          string                   `json:"title" example:"Efektivitas Pembelajaran Daring"`
	Subject        string                   `json:"subject" example:"Pendidikan Dasar"`
	StartDate      string                   `json:"startDate" example:"2026-02-02"`
	EndDate        string                   `json:"endDate" example:"2026-04-30"`
	Status         models.ApplicationStatus `json:"status" example:"PENDING"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// FromResearchRequest converts a models.ResearchRequest to a ResearchResponse
func FromResearchRequest(request *models.ResearchRequest) ResearchResponse {
	if request == nil {
		return ResearchResponse{}
	}
	return ResearchResponse{
		ID:             request.ID,
		FullName:       request.FullName,
		IdentityNumber: request.IdentityNumber,
		Email:          request.Email,
		Phone:          request.Phone,
		Institution:    request.Institution,
		Title:          request.Title,
		Subject:        request.Subject,
		StartDate:      request.StartDate.Format(DateFormat),
		EndDate:        request.EndDate.Format(DateFormat),
		Status:         request.Status,
		CreatedAt:      request.CreatedAt,
	}
}

// FromResearchRequests converts a slice of research requests to responses
func FromResearchRequests(requests []*models.ResearchRequest) []ResearchResponse {
	responses := make([]ResearchResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, FromResearchRequest(request))
	}
	return responses
}

// ResearchListResponse is the paginated research request listing
type ResearchListResponse struct {
	Requests   []ResearchResponse `json:"requests"`
	Pagination PaginationInfo     `json:"pagination"`
}
