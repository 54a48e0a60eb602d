package services

import (
	"context"
	"fmt"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/models/dto"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
)

// StatsService aggregates dashboard numbers for the admin panel
type StatsService struct {
	applicants *repositories.ApplicantRepository
	requests   *repositories.ResearchRequestRepository
	positions  *repositories.PositionRepository
}

// NewStatsService creates a new stats service
func NewStatsService(applicants *repositories.ApplicantRepository, requests *repositories.ResearchRequestRepository, positions *repositories.PositionRepository) *StatsService {
	return &StatsService{
		applicants: applicants,
		requests:   requests,
		positions:  positions,
	}
}

func statusCounts(counts map[models.ApplicationStatus]int64) dto.StatusCounts {
	result := dto.StatusCounts{
		Pending:  counts[models.StatusPending],
		Accepted: counts[models.StatusAccepted],
		Rejected: counts[models.StatusRejected],
	}
	result.Total = result.Pending + result.Accepted + result.Rejected
	return result
}

// GetStats collects applicant, research and quota statistics
func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	applicantCounts, err := s.applicants.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applicants: %w", err)
	}

	requestCounts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting research requests: %w", err)
	}

	totalQuota, totalFilled, err := s.positions.QuotaSummary(ctx)
	if err != nil {
		return nil, err
	}

	activeInterns, err := s.applicants.CountActiveInterns(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		Applicants:       statusCounts(applicantCounts),
		ResearchRequests: statusCounts(requestCounts),
		Positions: dto.QuotaSummary{
			TotalQuota:  totalQuota,
			TotalFilled: totalFilled,
		},
		ActiveInterns: activeInterns,
	}, nil
}
