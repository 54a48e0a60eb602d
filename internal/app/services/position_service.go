package services

import (
	"context"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
)

// positionStore is the subset of the position repository used by the service
type positionStore interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	GetAll(ctx context.Context) ([]*models.Position, error)
	Update(ctx context.Context, position *models.Position) error
	IsReferenced(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// PositionService handles internship position management
type PositionService struct {
	positions positionStore
}

// NewPositionService creates a new position service
func NewPositionService(positions positionStore) *PositionService {
	return &PositionService{
		positions: positions,
	}
}

// CreatePosition creates a new position with an empty filled count
func (s *PositionService) CreatePosition(ctx context.Context, position *models.Position) error {
	position.Filled = 0
	return s.positions.Create(ctx, position)
}

// GetPositionByID retrieves a position by ID
func (s *PositionService) GetPositionByID(ctx context.Context, id int64) (*models.Position, error) {
	return s.positions.GetByID(ctx, id)
}

// GetAllPositions retrieves all positions
func (s *PositionService) GetAllPositions(ctx context.Context) ([]*models.Position, error) {
	return s.positions.GetAll(ctx)
}

// UpdatePosition updates a position's title and quota
func (s *PositionService) UpdatePosition(ctx context.Context, position *models.Position) error {
	if _, err := s.positions.GetByID(ctx, position.ID); err != nil {
		return err
	}
	return s.positions.Update(ctx, position)
}

// DeletePosition deletes a position. Positions still referenced by
// applicants cannot be deleted; the referencing applicants keep their
// assignment.
func (s *PositionService) DeletePosition(ctx context.Context, id int64) error {
	referenced, err := s.positions.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.ErrPositionReferenced
	}

	return s.positions.Delete(ctx, id)
}
