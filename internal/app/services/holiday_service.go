package services

import (
	"context"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
)

// HolidayService handles the office holiday calendar
type HolidayService struct {
	holidays *repositories.HolidayRepository
}

// NewHolidayService creates a new holiday service
func NewHolidayService(holidays *repositories.HolidayRepository) *HolidayService {
	return &HolidayService{
		holidays: holidays,
	}
}

// CreateHoliday records a new holiday date
func (s *HolidayService) CreateHoliday(ctx context.Context, holiday *models.Holiday) error {
	return s.holidays.Create(ctx, holiday)
}

// GetAllHolidays retrieves all holidays ordered by date
func (s *HolidayService) GetAllHolidays(ctx context.Context) ([]*models.Holiday, error) {
	return s.holidays.GetAll(ctx)
}

// DeleteHoliday deletes a holiday by ID
func (s *HolidayService) DeleteHoliday(ctx context.Context, id int64) error {
	return s.holidays.Delete(ctx, id)
}
