package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/auth"
)

type fakeAdminStore struct {
	mu     sync.Mutex
	nextID int64
	admins map[int64]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin)}
}

func (s *fakeAdminStore) Create(ctx context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	admin.ID = s.nextID
	stored := *admin
	s.admins[admin.ID] = &stored
	return nil
}

func (s *fakeAdminStore) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (s *fakeAdminStore) GetAll(ctx context.Context) ([]*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Admin, 0, len(s.admins))
	for _, admin := range s.admins {
		copied := *admin
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeAdminStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.admins {
		if admin.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAdminStore) Update(ctx context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.admins[admin.ID]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	stored.Username = admin.Username
	stored.Jabatan = admin.Jabatan
	return nil
}

func (s *fakeAdminStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[id]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	admin.Password = passwordHash
	return nil
}

func (s *fakeAdminStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(s.admins, id)
	return nil
}

func TestCreateAdminHashesPassword(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store)

	admin := &models.Admin{Username: "operator", Jabatan: "Staf"}
	if err := service.CreateAdmin(context.Background(), admin, "rahasia123"); err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}

	stored, err := store.GetByID(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Password == "rahasia123" {
		t.Fatal("password stored as plaintext")
	}
	if !auth.CheckPassword(stored.Password, "rahasia123") {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store)

	if err := service.CreateAdmin(context.Background(), &models.Admin{Username: "operator"}, "rahasia123"); err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}

	err := service.CreateAdmin(context.Background(), &models.Admin{Username: "operator"}, "lainnya")
	if !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		t.Fatalf("CreateAdmin error = %v, want ErrUsernameAlreadyExists", err)
	}
}

func TestChangePassword(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store)

	admin := &models.Admin{Username: "operator"}
	if err := service.CreateAdmin(context.Background(), admin, "lama123"); err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}

	err := service.ChangePassword(context.Background(), admin.ID, "salah", "baru123")
	if !errors.Is(err, apperrors.ErrWrongOldPassword) {
		t.Fatalf("ChangePassword with wrong old password error = %v, want ErrWrongOldPassword", err)
	}

	if err := service.ChangePassword(context.Background(), admin.ID, "lama123", "baru123"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	stored, _ := store.GetByID(context.Background(), admin.ID)
	if !auth.CheckPassword(stored.Password, "baru123") {
		t.Fatal("new password does not verify after change")
	}
	if auth.CheckPassword(stored.Password, "lama123") {
		t.Fatal("old password still verifies after change")
	}
}

func TestDeleteAdminSelfDeletion(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store)

	admin := &models.Admin{Username: "operator"}
	if err := service.CreateAdmin(context.Background(), admin, "rahasia123"); err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}

	err := service.DeleteAdmin(context.Background(), admin.ID, admin.ID)
	if !errors.Is(err, apperrors.ErrSelfDeletion) {
		t.Fatalf("DeleteAdmin(self) error = %v, want ErrSelfDeletion", err)
	}

	if err := service.DeleteAdmin(context.Background(), admin.ID, admin.ID+1); err != nil {
		t.Fatalf("DeleteAdmin by another admin returned error: %v", err)
	}
	if _, err := store.GetByID(context.Background(), admin.ID); !errors.Is(err, apperrors.ErrAdminNotFound) {
		t.Fatal("admin still present after delete")
	}
}

func TestUpdateAdminTrimsUsername(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store)

	admin := &models.Admin{Username: "operator"}
	if err := service.CreateAdmin(context.Background(), admin, "rahasia123"); err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}

	admin.Username = "  operator2  "
	if err := service.UpdateAdmin(context.Background(), admin); err != nil {
		t.Fatalf("UpdateAdmin returned error: %v", err)
	}

	stored, _ := store.GetByID(context.Background(), admin.ID)
	if stored.Username != "operator2" {
		t.Fatalf("username = %q, want operator2", stored.Username)
	}
}
