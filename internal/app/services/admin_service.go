package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/auth"
	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
)

// adminStore is the subset of the admin repository used for account management
type adminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAll(ctx context.Context) ([]*models.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, admin *models.Admin) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// AdminService handles admin account management
type AdminService struct {
	admins adminStore
}

// NewAdminService creates a new admin service
func NewAdminService(admins adminStore) *AdminService {
	return &AdminService{
		admins: admins,
	}
}

// CreateAdmin creates a new admin account with a hashed password
func (s *AdminService) CreateAdmin(ctx context.Context, admin *models.Admin, password string) error {
	admin.Username = strings.TrimSpace(admin.Username)

	exists, err := s.admins.ExistsByUsername(ctx, admin.Username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return apperrors.ErrUsernameAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	admin.Password = hash

	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Int64("adminId", admin.ID).Msg("Admin account created")
	return nil
}

// GetAdminByID retrieves an admin by ID
func (s *AdminService) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

// GetAllAdmins retrieves all admin accounts
func (s *AdminService) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.admins.GetAll(ctx)
}

// UpdateAdmin updates an admin's profile fields
func (s *AdminService) UpdateAdmin(ctx context.Context, admin *models.Admin) error {
	admin.Username = strings.TrimSpace(admin.Username)

	if _, err := s.admins.GetByID(ctx, admin.ID); err != nil {
		return err
	}

	return s.admins.Update(ctx, admin)
}

// ChangePassword replaces an admin's password after verifying the old one
func (s *AdminService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.Password, oldPassword) {
		return apperrors.ErrWrongOldPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.admins.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	logger.Info().Int64("adminId", id).Msg("Admin password changed")
	return nil
}

// DeleteAdmin deletes an admin account. Admins cannot delete themselves.
func (s *AdminService) DeleteAdmin(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return apperrors.ErrSelfDeletion
	}

	if _, err := s.admins.GetByID(ctx, id); err != nil {
		return err
	}

	return s.admins.Delete(ctx, id)
}
