package services

import (
	"context"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
)

// SettingService handles portal settings
type SettingService struct {
	settings *repositories.SettingRepository
}

// NewSettingService creates a new setting service
func NewSettingService(settings *repositories.SettingRepository) *SettingService {
	return &SettingService{
		settings: settings,
	}
}

// GetSetting retrieves a setting by key
func (s *SettingService) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	return s.settings.GetByKey(ctx, key)
}

// GetAllSettings retrieves all settings
func (s *SettingService) GetAllSettings(ctx context.Context) ([]*models.Setting, error) {
	return s.settings.GetAll(ctx)
}

// UpdateSetting writes a setting value
func (s *SettingService) UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	setting := &models.Setting{Key: key, Value: value}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
