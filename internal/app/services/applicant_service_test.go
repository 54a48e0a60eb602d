package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/workdays"
)

type fakeApplicantStore struct {
	mu         sync.Mutex
	nextID     int64
	applicants map[int64]*models.Applicant
}

func newFakeApplicantStore() *fakeApplicantStore {
	return &fakeApplicantStore{applicants: make(map[int64]*models.Applicant)}
}

func (s *fakeApplicantStore) Create(ctx context.Context, applicant *models.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	applicant.ID = s.nextID
	stored := *applicant
	s.applicants[applicant.ID] = &stored
	return nil
}

func (s *fakeApplicantStore) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applicant, ok := s.applicants[id]
	if !ok {
		return nil, apperrors.ErrApplicantNotFound
	}
	copied := *applicant
	return &copied, nil
}

func (s *fakeApplicantStore) GetAll(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.Applicant, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Applicant
	for _, applicant := range s.applicants {
		if status == "" || applicant.Status == status {
			copied := *applicant
			result = append(result, &copied)
		}
	}
	return result, int64(len(result)), nil
}

func (s *fakeApplicantStore) UpdateDates(ctx context.Context, applicant *models.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.applicants[applicant.ID]
	if !ok {
		return apperrors.ErrApplicantNotFound
	}
	stored.StartDate = applicant.StartDate
	stored.EndDate = applicant.EndDate
	stored.DurationDays = applicant.DurationDays
	return nil
}

type fakeHolidayCalendar struct {
	set workdays.HolidaySet
}

func (c *fakeHolidayCalendar) GetHolidaySet(ctx context.Context, from time.Time) (workdays.HolidaySet, error) {
	return c.set, nil
}

type fakeSeat struct {
	quota  int
	filled int
}

// fakeTxStore acts as both the transaction runner and the transaction itself;
// Do simply invokes the function against the shared in-memory state.
type fakeTxStore struct {
	mu         sync.Mutex
	applicants *fakeApplicantStore
	positions  map[int64]*fakeSeat
}

func newFakeTxStore(applicants *fakeApplicantStore) *fakeTxStore {
	return &fakeTxStore{
		applicants: applicants,
		positions:  make(map[int64]*fakeSeat),
	}
}

func (s *fakeTxStore) Do(ctx context.Context, fn func(ctx context.Context, tx repositories.ApplicantTx) error) error {
	return fn(ctx, s)
}

func (s *fakeTxStore) GetApplicantForUpdate(ctx context.Context, id int64) (*models.Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

func (s *fakeTxStore) SetApplicantStatus(ctx context.Context, id int64, status models.ApplicationStatus, positionID *int64) error {
	s.applicants.mu.Lock()
	defer s.applicants.mu.Unlock()
	applicant, ok := s.applicants.applicants[id]
	if !ok {
		return apperrors.ErrApplicantNotFound
	}
	applicant.Status = status
	applicant.PositionID = positionID
	return nil
}

func (s *fakeTxStore) ClaimPositionSeat(ctx context.Context, positionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seat, ok := s.positions[positionID]
	if !ok {
		return apperrors.ErrPositionNotFound
	}
	if seat.filled >= seat.quota {
		return apperrors.ErrPositionFull
	}
	seat.filled++
	return nil
}

func (s *fakeTxStore) ReleasePositionSeat(ctx context.Context, positionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seat, ok := s.positions[positionID]
	if !ok {
		return apperrors.ErrPositionNotFound
	}
	if seat.filled > 0 {
		seat.filled--
	}
	return nil
}

func (s *fakeTxStore) DeleteApplicant(ctx context.Context, id int64) error {
	s.applicants.mu.Lock()
	defer s.applicants.mu.Unlock()
	if _, ok := s.applicants.applicants[id]; !ok {
		return apperrors.ErrApplicantNotFound
	}
	delete(s.applicants.applicants, id)
	return nil
}

type fakeDocumentStore struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (s *fakeDocumentStore) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := subPath + "/" + fileHeader.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeDocumentStore) DeleteFile(filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, filePath)
	return nil
}

type applicantFixture struct {
	service    *ApplicantService
	applicants *fakeApplicantStore
	tx         *fakeTxStore
	documents  *fakeDocumentStore
}

func newApplicantFixture(holidays workdays.HolidaySet) *applicantFixture {
	applicants := newFakeApplicantStore()
	tx := newFakeTxStore(applicants)
	documents := &fakeDocumentStore{}
	service := NewApplicantService(applicants, &fakeHolidayCalendar{set: holidays}, tx, documents)
	return &applicantFixture{service: service, applicants: applicants, tx: tx, documents: documents}
}

func (f *applicantFixture) addPending(t *testing.T) *models.Applicant {
	t.Helper()
	applicant := &models.Applicant{
		FullName:     "Budi Santoso",
		Email:        "budi@student.ac.id",
		Institution:  "Universitas Negeri Semarang",
		StartDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
	}
	if err := f.service.Register(context.Background(), applicant, nil, nil, nil); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return applicant
}

func TestRegisterComputesEndDateAndPending(t *testing.T) {
	f := newApplicantFixture(nil)

	applicant := f.addPending(t)

	if applicant.Status != models.StatusPending {
		t.Fatalf("status = %s, want PENDING", applicant.Status)
	}
	if applicant.PositionID != nil {
		t.Fatal("new applicant should not be attached to a position")
	}
	// Monday start, 5 working days, no holidays: ends Friday
	if want := time.Date(2026, time.February, 6, 0, 0, 0, 0, time.UTC); !applicant.EndDate.Equal(want) {
		t.Fatalf("end date = %v, want %v", applicant.EndDate, want)
	}
}

func TestRegisterIgnoresClientEndDate(t *testing.T) {
	f := newApplicantFixture(nil)

	applicant := &models.Applicant{
		FullName:     "Siti Aminah",
		StartDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2027, time.December, 31, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
	}
	if err := f.service.Register(context.Background(), applicant, nil, nil, nil); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if want := time.Date(2026, time.February, 6, 0, 0, 0, 0, time.UTC); !applicant.EndDate.Equal(want) {
		t.Fatalf("end date = %v, want server-computed %v", applicant.EndDate, want)
	}
}

func TestRegisterRejectsInvalidDuration(t *testing.T) {
	f := newApplicantFixture(nil)

	applicant := &models.Applicant{
		FullName:     "Budi Santoso",
		StartDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		DurationDays: 0,
	}
	err := f.service.Register(context.Background(), applicant, nil, nil, nil)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("Register error = %v, want bad request", err)
	}
}

func TestRegisterStoresDocuments(t *testing.T) {
	f := newApplicantFixture(nil)

	applicant := &models.Applicant{
		FullName:     "Budi Santoso",
		StartDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
	}
	cover := &multipart.FileHeader{Filename: "surat-pengantar.pdf"}
	photo := &multipart.FileHeader{Filename: "foto.jpg"}

	if err := f.service.Register(context.Background(), applicant, cover, nil, photo); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if applicant.CoverLetterPath != "documents/surat-pengantar.pdf" {
		t.Fatalf("cover letter path = %q", applicant.CoverLetterPath)
	}
	if applicant.RecommendationLetterPath != "" {
		t.Fatalf("recommendation letter path = %q, want empty", applicant.RecommendationLetterPath)
	}
	if applicant.PhotoPath != "documents/foto.jpg" {
		t.Fatalf("photo path = %q", applicant.PhotoPath)
	}
}

func TestComputeEndDateSkipsHolidays(t *testing.T) {
	holiday := time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC) // Wednesday
	f := newApplicantFixture(workdays.NewHolidaySet([]time.Time{holiday}))

	end, err := f.service.ComputeEndDate(context.Background(), time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), 5)
	if err != nil {
		t.Fatalf("ComputeEndDate returned error: %v", err)
	}
	if want := time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("end date = %v, want %v", end, want)
	}
}

func TestDecideAcceptFillsQuota(t *testing.T) {
	f := newApplicantFixture(nil)
	f.tx.positions[1] = &fakeSeat{quota: 2}

	first := f.addPending(t)
	second := f.addPending(t)
	third := f.addPending(t)

	positionID := int64(1)
	for _, applicant := range []*models.Applicant{first, second} {
		if err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &positionID); err != nil {
			t.Fatalf("Decide(accept %d) returned error: %v", applicant.ID, err)
		}
	}
	if got := f.tx.positions[1].filled; got != 2 {
		t.Fatalf("filled = %d, want 2", got)
	}

	err := f.service.Decide(context.Background(), third.ID, models.StatusAccepted, &positionID)
	if !errors.Is(err, apperrors.ErrPositionFull) {
		t.Fatalf("Decide on full position error = %v, want ErrPositionFull", err)
	}

	stored, _ := f.applicants.GetByID(context.Background(), third.ID)
	if stored.Status != models.StatusPending {
		t.Fatalf("rejected claim must leave applicant PENDING, got %s", stored.Status)
	}
	if got := f.tx.positions[1].filled; got != 2 {
		t.Fatalf("filled after failed claim = %d, want 2", got)
	}
}

func TestDecideAcceptIsIdempotent(t *testing.T) {
	f := newApplicantFixture(nil)
	f.tx.positions[1] = &fakeSeat{quota: 1}

	applicant := f.addPending(t)
	positionID := int64(1)

	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &positionID); err != nil {
		t.Fatalf("first accept returned error: %v", err)
	}
	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &positionID); err != nil {
		t.Fatalf("repeated accept returned error: %v", err)
	}

	if got := f.tx.positions[1].filled; got != 1 {
		t.Fatalf("filled = %d, want 1 after repeated accept", got)
	}
}

func TestDecideAcceptedApplicantCannotMove(t *testing.T) {
	f := newApplicantFixture(nil)
	f.tx.positions[1] = &fakeSeat{quota: 1}
	f.tx.positions[2] = &fakeSeat{quota: 1}

	applicant := f.addPending(t)
	first, other := int64(1), int64(2)

	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &first); err != nil {
		t.Fatalf("accept returned error: %v", err)
	}

	err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &other)
	if !errors.Is(err, apperrors.ErrApplicantDecided) {
		t.Fatalf("accept into another position error = %v, want ErrApplicantDecided", err)
	}
	err = f.service.Decide(context.Background(), applicant.ID, models.StatusRejected, nil)
	if !errors.Is(err, apperrors.ErrApplicantDecided) {
		t.Fatalf("reject of accepted applicant error = %v, want ErrApplicantDecided", err)
	}
	if got := f.tx.positions[2].filled; got != 0 {
		t.Fatalf("other position filled = %d, want 0", got)
	}
}

func TestDecideRejectIsIdempotent(t *testing.T) {
	f := newApplicantFixture(nil)

	applicant := f.addPending(t)

	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusRejected, nil); err != nil {
		t.Fatalf("reject returned error: %v", err)
	}
	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusRejected, nil); err != nil {
		t.Fatalf("repeated reject returned error: %v", err)
	}

	positionID := int64(1)
	err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &positionID)
	if !errors.Is(err, apperrors.ErrApplicantDecided) {
		t.Fatalf("accept of rejected applicant error = %v, want ErrApplicantDecided", err)
	}
}

func TestDecideValidatesInput(t *testing.T) {
	f := newApplicantFixture(nil)
	applicant := f.addPending(t)

	err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, nil)
	if !errors.Is(err, apperrors.ErrPositionRequired) {
		t.Fatalf("accept without position error = %v, want ErrPositionRequired", err)
	}

	err = f.service.Decide(context.Background(), applicant.ID, models.StatusPending, nil)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Fatalf("decide to PENDING error = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateDatesRecomputesEndDate(t *testing.T) {
	holiday := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC) // Tuesday
	f := newApplicantFixture(workdays.NewHolidaySet([]time.Time{holiday}))

	applicant := f.addPending(t)

	newStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) // Monday
	updated, err := f.service.UpdateDates(context.Background(), applicant.ID, newStart, 3)
	if err != nil {
		t.Fatalf("UpdateDates returned error: %v", err)
	}

	// Mon counts, Tue is a holiday, so Wed and Thu complete the three days
	if want := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC); !updated.EndDate.Equal(want) {
		t.Fatalf("end date = %v, want %v", updated.EndDate, want)
	}

	stored, _ := f.applicants.GetByID(context.Background(), applicant.ID)
	if stored.DurationDays != 3 || !stored.StartDate.Equal(newStart) {
		t.Fatalf("stored applicant not updated: %+v", stored)
	}
}

func TestDeleteReleasesSeatAndDocuments(t *testing.T) {
	f := newApplicantFixture(nil)
	f.tx.positions[1] = &fakeSeat{quota: 1}

	applicant := &models.Applicant{
		FullName:     "Budi Santoso",
		StartDate:    time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
	}
	cover := &multipart.FileHeader{Filename: "surat-pengantar.pdf"}
	if err := f.service.Register(context.Background(), applicant, cover, nil, nil); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	positionID := int64(1)
	if err := f.service.Decide(context.Background(), applicant.ID, models.StatusAccepted, &positionID); err != nil {
		t.Fatalf("accept returned error: %v", err)
	}

	if err := f.service.Delete(context.Background(), applicant.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if got := f.tx.positions[1].filled; got != 0 {
		t.Fatalf("filled after delete = %d, want 0", got)
	}
	if _, err := f.applicants.GetByID(context.Background(), applicant.ID); !errors.Is(err, apperrors.ErrApplicantNotFound) {
		t.Fatalf("applicant still present after delete: %v", err)
	}

	found := false
	for _, path := range f.documents.deleted {
		if path == "documents/surat-pengantar.pdf" {
			found = true
		}
	}
	if !found {
		t.Fatalf("cover letter not deleted, deleted = %v", f.documents.deleted)
	}
}

func TestListApplicantsRejectsUnknownStatus(t *testing.T) {
	f := newApplicantFixture(nil)

	_, _, err := f.service.ListApplicants(context.Background(), models.ApplicationStatus("WAITING"), 0, 10)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Fatalf("ListApplicants error = %v, want ErrInvalidStatus", err)
	}
}
