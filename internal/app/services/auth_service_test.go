package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/auth"
)

type fakeAdminReader struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

func newFakeAdminReader() *fakeAdminReader {
	return &fakeAdminReader{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminReader) add(t *testing.T, id int64, username, password string) *models.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	admin := &models.Admin{ID: id, Username: username, Password: hash, Jabatan: "Staf"}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[username] = admin
	return admin
}

func (r *fakeAdminReader) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminReader) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.ID == id {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  time.Hour,
		TokenIssuer: "test",
	})
}

func TestLoginIssuesValidToken(t *testing.T) {
	admins := newFakeAdminReader()
	admins.add(t, 1, "admin", "rahasia123")

	jwtService := newTestJWTService()
	service := NewAuthService(admins, jwtService)

	admin, token, expiresIn, err := service.Login(context.Background(), "admin", "rahasia123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if admin.ID != 1 {
		t.Fatalf("admin ID = %d, want 1", admin.ID)
	}
	if expiresIn != 3600 {
		t.Fatalf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.AdminID != 1 || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	admins := newFakeAdminReader()
	admins.add(t, 1, "admin", "rahasia123")

	service := NewAuthService(admins, newTestJWTService())

	_, _, _, err := service.Login(context.Background(), "admin", "salah")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	service := NewAuthService(newFakeAdminReader(), newTestJWTService())

	// Unknown usernames get the same error as a wrong password
	_, _, _, err := service.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestCurrentAdmin(t *testing.T) {
	admins := newFakeAdminReader()
	admins.add(t, 5, "kadis", "rahasia123")

	service := NewAuthService(admins, newTestJWTService())

	admin, err := service.CurrentAdmin(context.Background(), 5)
	if err != nil {
		t.Fatalf("CurrentAdmin returned error: %v", err)
	}
	if admin.Username != "kadis" {
		t.Fatalf("username = %q, want kadis", admin.Username)
	}

	if _, err := service.CurrentAdmin(context.Background(), 99); !errors.Is(err, apperrors.ErrAdminNotFound) {
		t.Fatalf("CurrentAdmin(99) error = %v, want ErrAdminNotFound", err)
	}
}
