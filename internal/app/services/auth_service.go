package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/auth"
	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
)

// adminReader is the subset of the admin repository used for authentication
type adminReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

// AuthService handles admin authentication
type AuthService struct {
	admins     adminReader
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(admins adminReader, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		admins:     admins,
		jwtService: jwtService,
	}
}

// Login verifies admin credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, string, int, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			// Same error as a wrong password so usernames cannot be probed
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, fmt.Errorf("error retrieving admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, password) {
		logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateSessionToken(admin)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating session token: %w", err)
	}

	logger.Info().Str("username", username).Int64("adminId", admin.ID).Msg("Admin logged in")
	return admin, token, expiresIn, nil
}

// CurrentAdmin returns the admin account behind a session
func (s *AuthService) CurrentAdmin(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return admin, nil
}
