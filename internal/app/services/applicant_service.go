package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/app/repositories"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/logger"
	"github.com/arifsetiawan/magangdik/internal/pkg/workdays"
)

// applicantStore is the subset of the applicant repository used by the service
type applicantStore interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	GetByID(ctx context.Context, id int64) (*models.Applicant, error)
	GetAll(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.Applicant, int64, error)
	UpdateDates(ctx context.Context, applicant *models.Applicant) error
}

// holidayCalendar supplies the authoritative set of non-working dates
type holidayCalendar interface {
	GetHolidaySet(ctx context.Context, from time.Time) (workdays.HolidaySet, error)
}

// applicantTxRunner runs applicant unit-of-work functions transactionally
type applicantTxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx repositories.ApplicantTx) error) error
}

// documentStore persists applicant attachments
type documentStore interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(filePath string) error
}

const documentSubPath = "documents"

// ApplicantService handles internship applications and their lifecycle
type ApplicantService struct {
	applicants applicantStore
	holidays   holidayCalendar
	txRunner   applicantTxRunner
	documents  documentStore
}

// NewApplicantService creates a new applicant service
func NewApplicantService(applicants applicantStore, holidays holidayCalendar, txRunner applicantTxRunner, documents documentStore) *ApplicantService {
	return &ApplicantService{
		applicants: applicants,
		holidays:   holidays,
		txRunner:   txRunner,
		documents:  documents,
	}
}

// ComputeEndDate returns the last day of an internship that starts on start
// and spans workingDays working days. Weekends and recorded holidays do not
// count toward the duration.
func (s *ApplicantService) ComputeEndDate(ctx context.Context, start time.Time, workingDays int) (time.Time, error) {
	holidaySet, err := s.holidays.GetHolidaySet(ctx, start)
	if err != nil {
		return time.Time{}, fmt.Errorf("error loading holidays: %w", err)
	}

	end, err := workdays.EndDate(start, workingDays, holidaySet)
	if err != nil {
		if errors.Is(err, workdays.ErrInvalidCount) {
			return time.Time{}, apperrors.NewBadRequestError("Working days must be at least 1")
		}
		return time.Time{}, err
	}

	return end, nil
}

// Register records a new internship application with status PENDING. The end
// date is always computed on the server from the start date and requested
// duration; any end date sent by the client is ignored.
func (s *ApplicantService) Register(ctx context.Context, applicant *models.Applicant, coverLetter, recommendationLetter, photo *multipart.FileHeader) error {
	endDate, err := s.ComputeEndDate(ctx, applicant.StartDate, applicant.DurationDays)
	if err != nil {
		return err
	}

	applicant.EndDate = endDate
	applicant.Status = models.StatusPending
	applicant.PositionID = nil

	var savedPaths []string
	saveDocument := func(fileHeader *multipart.FileHeader) (string, error) {
		path, err := s.documents.SaveFile(fileHeader, documentSubPath)
		if err != nil {
			return "", err
		}
		if path != "" {
			savedPaths = append(savedPaths, path)
		}
		return path, nil
	}

	cleanup := func() {
		for _, path := range savedPaths {
			if err := s.documents.DeleteFile(path); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Failed to remove orphaned document")
			}
		}
	}

	if applicant.CoverLetterPath, err = saveDocument(coverLetter); err != nil {
		cleanup()
		return fmt.Errorf("error saving cover letter: %w", err)
	}
	if applicant.RecommendationLetterPath, err = saveDocument(recommendationLetter); err != nil {
		cleanup()
		return fmt.Errorf("error saving recommendation letter: %w", err)
	}
	if applicant.PhotoPath, err = saveDocument(photo); err != nil {
		cleanup()
		return fmt.Errorf("error saving photo: %w", err)
	}

	if err := s.applicants.Create(ctx, applicant); err != nil {
		cleanup()
		return err
	}

	logger.Info().Int64("applicantId", applicant.ID).Str("institution", applicant.Institution).Msg("Internship application registered")
	return nil
}

// GetApplicantByID retrieves an applicant by ID
func (s *ApplicantService) GetApplicantByID(ctx context.Context, id int64) (*models.Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

// ListApplicants retrieves applicants filtered by status with pagination
func (s *ApplicantService) ListApplicants(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.Applicant, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.ErrInvalidStatus
	}
	return s.applicants.GetAll(ctx, status, offset, limit)
}

// Decide moves an applicant from PENDING to ACCEPTED or REJECTED. Accepting
// claims a seat on the target position inside the same transaction; when the
// position is already full the decision fails and nothing changes. Repeating
// an identical decision is a no-op, any other change to a decided applicant
// is a conflict.
func (s *ApplicantService) Decide(ctx context.Context, id int64, status models.ApplicationStatus, positionID *int64) error {
	if !status.IsDecided() {
		return apperrors.ErrInvalidStatus
	}
	if status == models.StatusAccepted && positionID == nil {
		return apperrors.ErrPositionRequired
	}

	err := s.txRunner.Do(ctx, func(ctx context.Context, tx repositories.ApplicantTx) error {
		applicant, err := tx.GetApplicantForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if status == models.StatusAccepted {
			if applicant.Status == models.StatusAccepted {
				if applicant.PositionID != nil && *applicant.PositionID == *positionID {
					return nil
				}
				return apperrors.ErrApplicantDecided
			}
			if applicant.Status == models.StatusRejected {
				return apperrors.ErrApplicantDecided
			}

			if err := tx.ClaimPositionSeat(ctx, *positionID); err != nil {
				return err
			}
			return tx.SetApplicantStatus(ctx, id, models.StatusAccepted, positionID)
		}

		if applicant.Status == models.StatusRejected {
			return nil
		}
		if applicant.Status == models.StatusAccepted {
			return apperrors.ErrApplicantDecided
		}
		return tx.SetApplicantStatus(ctx, id, models.StatusRejected, nil)
	})

	if err != nil {
		return err
	}

	logger.Info().Int64("applicantId", id).Str("status", string(status)).Msg("Applicant decision recorded")
	return nil
}

// UpdateDates rewrites an applicant's internship period. The end date is
// recomputed on the server from the new start date and duration.
func (s *ApplicantService) UpdateDates(ctx context.Context, id int64, startDate time.Time, durationDays int) (*models.Applicant, error) {
	applicant, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	endDate, err := s.ComputeEndDate(ctx, startDate, durationDays)
	if err != nil {
		return nil, err
	}

	applicant.StartDate = startDate
	applicant.EndDate = endDate
	applicant.DurationDays = durationDays

	if err := s.applicants.UpdateDates(ctx, applicant); err != nil {
		return nil, err
	}

	return applicant, nil
}

// Delete removes an applicant. An accepted applicant's position seat is
// released in the same transaction, and stored documents are removed after
// the row is gone.
func (s *ApplicantService) Delete(ctx context.Context, id int64) error {
	var documentPaths []string

	err := s.txRunner.Do(ctx, func(ctx context.Context, tx repositories.ApplicantTx) error {
		applicant, err := tx.GetApplicantForUpdate(ctx, id)
		if err != nil {
			return err
		}

		documentPaths = applicant.DocumentPaths()

		if applicant.Status == models.StatusAccepted && applicant.PositionID != nil {
			if err := tx.ReleasePositionSeat(ctx, *applicant.PositionID); err != nil {
				return err
			}
		}

		return tx.DeleteApplicant(ctx, id)
	})

	if err != nil {
		return err
	}

	for _, path := range documentPaths {
		if err := s.documents.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to delete applicant document")
		}
	}

	logger.Info().Int64("applicantId", id).Msg("Applicant deleted")
	return nil
}
