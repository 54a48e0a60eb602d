package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
)

type fakePositionStore struct {
	mu         sync.Mutex
	nextID     int64
	positions  map[int64]*models.Position
	referenced map[int64]bool
}

func newFakePositionStore() *fakePositionStore {
	return &fakePositionStore{
		positions:  make(map[int64]*models.Position),
		referenced: make(map[int64]bool),
	}
}

func (s *fakePositionStore) Create(ctx context.Context, position *models.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	position.ID = s.nextID
	stored := *position
	s.positions[position.ID] = &stored
	return nil
}

func (s *fakePositionStore) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	position, ok := s.positions[id]
	if !ok {
		return nil, apperrors.ErrPositionNotFound
	}
	copied := *position
	return &copied, nil
}

func (s *fakePositionStore) GetAll(ctx context.Context) ([]*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Position, 0, len(s.positions))
	for _, position := range s.positions {
		copied := *position
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakePositionStore) Update(ctx context.Context, position *models.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.positions[position.ID]
	if !ok {
		return apperrors.ErrPositionNotFound
	}
	if position.Quota < stored.Filled {
		return apperrors.NewConflictError("Quota cannot be lower than the number of accepted applicants")
	}
	stored.Title = position.Title
	stored.Quota = position.Quota
	return nil
}

func (s *fakePositionStore) IsReferenced(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.referenced[id], nil
}

func (s *fakePositionStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.positions[id]; !ok {
		return apperrors.ErrPositionNotFound
	}
	delete(s.positions, id)
	return nil
}

func TestCreatePositionStartsEmpty(t *testing.T) {
	store := newFakePositionStore()
	service := NewPositionService(store)

	position := &models.Position{Title: "Bagian Kepegawaian", Quota: 3, Filled: 2}
	if err := service.CreatePosition(context.Background(), position); err != nil {
		t.Fatalf("CreatePosition returned error: %v", err)
	}

	stored, err := store.GetByID(context.Background(), position.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Filled != 0 {
		t.Fatalf("filled = %d, want 0 for a new position", stored.Filled)
	}
}

func TestDeletePositionRestrictedWhileReferenced(t *testing.T) {
	store := newFakePositionStore()
	service := NewPositionService(store)

	position := &models.Position{Title: "Bagian Kepegawaian", Quota: 3}
	if err := service.CreatePosition(context.Background(), position); err != nil {
		t.Fatalf("CreatePosition returned error: %v", err)
	}
	store.referenced[position.ID] = true

	err := service.DeletePosition(context.Background(), position.ID)
	if !errors.Is(err, apperrors.ErrPositionReferenced) {
		t.Fatalf("DeletePosition error = %v, want ErrPositionReferenced", err)
	}

	// The position and the applicant assignments to it must survive
	if _, err := store.GetByID(context.Background(), position.ID); err != nil {
		t.Fatalf("referenced position was removed: %v", err)
	}
}

func TestDeletePositionWhenUnreferenced(t *testing.T) {
	store := newFakePositionStore()
	service := NewPositionService(store)

	position := &models.Position{Title: "Bagian Umum", Quota: 2}
	if err := service.CreatePosition(context.Background(), position); err != nil {
		t.Fatalf("CreatePosition returned error: %v", err)
	}

	if err := service.DeletePosition(context.Background(), position.ID); err != nil {
		t.Fatalf("DeletePosition returned error: %v", err)
	}
	if _, err := store.GetByID(context.Background(), position.ID); !errors.Is(err, apperrors.ErrPositionNotFound) {
		t.Fatal("position still present after delete")
	}

	if err := service.DeletePosition(context.Background(), 99); !errors.Is(err, apperrors.ErrPositionNotFound) {
		t.Fatalf("DeletePosition(99) error = %v, want ErrPositionNotFound", err)
	}
}

func TestUpdatePositionQuotaFloor(t *testing.T) {
	store := newFakePositionStore()
	service := NewPositionService(store)

	position := &models.Position{Title: "Bagian Keuangan", Quota: 4}
	if err := service.CreatePosition(context.Background(), position); err != nil {
		t.Fatalf("CreatePosition returned error: %v", err)
	}
	store.positions[position.ID].Filled = 3

	position.Quota = 2
	err := service.UpdatePosition(context.Background(), position)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("UpdatePosition below filled error = %v, want conflict", err)
	}

	position.Quota = 3
	if err := service.UpdatePosition(context.Background(), position); err != nil {
		t.Fatalf("UpdatePosition returned error: %v", err)
	}
	stored, _ := store.GetByID(context.Background(), position.ID)
	if stored.Quota != 3 {
		t.Fatalf("quota = %d, want 3", stored.Quota)
	}
}
