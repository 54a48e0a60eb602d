package services

import (
	"context"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
)

// ResearchService handles research permit requests
type ResearchService struct {
	requests *repositories.ResearchRequestRepository
}

// NewResearchService creates a new research service
func NewResearchService(requests *repositories.ResearchRequestRepository) *ResearchService {
	return &ResearchService{
		requests: requests,
	}
}

// CreateRequest records a new research permit request with status PENDING
func (s *ResearchService) CreateRequest(ctx context.Context, request *models.ResearchRequest) error {
	if !request.EndDate.After(request.StartDate) && !request.EndDate.Equal(request.StartDate) {
		return apperrors.NewBadRequestError("End date must not be before the start date")
	}

	request.Status = models.StatusPending

	if err := s.requests.Create(ctx, request); err != nil {
		return err
	}

	logger.Info().Int64("requestId", request.ID).Str("institution", request.Institution).Msg("Research permit request registered")
	return nil
}

// GetRequestByID retrieves a research request by ID
func (s *ResearchService) GetRequestByID(ctx context.Context, id int64) (*models.ResearchRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// ListRequests retrieves research requests filtered by status with pagination
func (s *ResearchService) ListRequests(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.ResearchRequest, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.ErrInvalidStatus
	}
	return s.requests.GetAll(ctx, status, offset, limit)
}

// Decide moves a research request from PENDING to ACCEPTED or REJECTED.
// Repeating an identical decision is a no-op.
func (s *ResearchService) Decide(ctx context.Context, id int64, status models.ApplicationStatus) error {
	if !status.IsDecided() {
		return apperrors.ErrInvalidStatus
	}

	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status == status {
		return nil
	}
	if request.Status.IsDecided() {
		return apperrors.ErrApplicantDecided
	}

	return s.requests.UpdateStatus(ctx, id, status)
}

// DeleteRequest deletes a research request by ID
func (s *ResearchService) DeleteRequest(ctx context.Context, id int64) error {
	return s.requests.Delete(ctx, id)
}
