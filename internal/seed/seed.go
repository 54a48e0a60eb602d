package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/arifsetiawan/magangdik/internal/app/models"
	appRepos "github.com/arifsetiawan/magangdik/internal/app/repositories"
	"github.com/arifsetiawan/magangdik/internal/pkg/auth"
)

// Default settings written on first start. Values are placeholders the
// office replaces through the settings API.
var defaultSettings = map[string]string{
	"office_name":     "Dinas Pendidikan",
	"contact_email":   "magang@disdik.example.id",
	"contact_phone":   "(024) 0000000",
	"office_address":  "Jl. Pendidikan No. 1",
	"announcement":    "",
	"portal_open":     "true",
	"max_active_days": "90",
}

// CreateDefaultData creates the default admin account and baseline settings
// if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	settingRepo := appRepos.NewSettingRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error // Collect errors without stopping the process

	// --- Default admin account --- //
	count, err := adminRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin accounts")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		lgr.Info().Msg("Creating default admin account...")

		hashedPassword, err := auth.HashPassword("admin123")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.Admin{
				Username: "admin",
				Password: hashedPassword,
				FullName: "Administrator",
				Jabatan:  "Kepala Dinas",
			}

			if err := adminRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating default admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin account created; change the password after first login")
			}
		}
	}

	// --- Baseline settings --- //
	for key, value := range defaultSettings {
		if _, err := settingRepo.GetByKey(ctx, key); err == nil {
			continue // Existing values are never overwritten
		}

		setting := &appModels.Setting{Key: key, Value: value}
		if err := settingRepo.Upsert(ctx, setting); err != nil {
			lgr.Error().Err(err).Str("key", key).Msg("Error seeding setting")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
