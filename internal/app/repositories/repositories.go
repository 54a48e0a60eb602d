package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository           *AdminRepository
	PositionRepository        *PositionRepository
	ApplicantRepository       *ApplicantRepository
	ResearchRequestRepository *ResearchRequestRepository
	HolidayRepository         *HolidayRepository
	SettingRepository         *SettingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:           NewAdminRepository(db),
		PositionRepository:        NewPositionRepository(db),
		ApplicantRepository:       NewApplicantRepository(db),
		ResearchRequestRepository: NewResearchRequestRepository(db),
		HolidayRepository:         NewHolidayRepository(db),
		SettingRepository:         NewSettingRepository(db),
	}
}
