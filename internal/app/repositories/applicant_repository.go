package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
)

// ApplicantRepository handles database operations for internship applicants
type ApplicantRepository struct {
	db *pgxpool.Pool
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{
		db: db,
	}
}

const applicantColumns = `
	a.id, a.full_name, a.email, a.phone, a.institution, a.major,
	a.start_date, a.end_date, a.duration_days, a.status, a.position_id,
	a.cover_letter_path, a.recommendation_letter_path, a.photo_path,
	a.created_at, a.updated_at`

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	var applicant models.Applicant
	err := row.Scan(
		&applicant.ID,
		&applicant.FullName,
		&applicant.Email,
		&applicant.Phone,
		&applicant.Institution,
		&applicant.Major,
		&applicant.StartDate,
		&applicant.EndDate,
		&applicant.DurationDays,
		&applicant.Status,
		&applicant.PositionID,
		&applicant.CoverLetterPath,
		&applicant.RecommendationLetterPath,
		&applicant.PhotoPath,
		&applicant.CreatedAt,
		&applicant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// Create creates a new applicant with status PENDING
func (r *ApplicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	query := `
		INSERT INTO applicants (
			full_name, email, phone, institution, major,
			start_date, end_date, duration_days, status,
			cover_letter_path, recommendation_letter_path, photo_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		applicant.FullName,
		applicant.Email,
		applicant.Phone,
		applicant.Institution,
		applicant.Major,
		applicant.StartDate,
		applicant.EndDate,
		applicant.DurationDays,
		applicant.Status,
		applicant.CoverLetterPath,
		applicant.RecommendationLetterPath,
		applicant.PhotoPath,
	).Scan(&applicant.ID, &applicant.CreatedAt, &applicant.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating applicant: %w", err)
	}

	return nil
}

// GetByID retrieves an applicant by ID, including the assigned position if any
func (r *ApplicantRepository) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	query := `SELECT` + applicantColumns + `
		FROM applicants a
		WHERE a.id = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("error retrieving applicant: %w", err)
	}

	if applicant.PositionID != nil {
		position, err := r.loadPosition(ctx, *applicant.PositionID)
		if err != nil {
			return nil, err
		}
		applicant.Position = position
	}

	return applicant, nil
}

// GetByIDForUpdate retrieves an applicant row locked for the transaction
func (r *ApplicantRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Applicant, error) {
	query := `SELECT` + applicantColumns + `
		FROM applicants a
		WHERE a.id = $1
		FOR UPDATE`

	applicant, err := scanApplicant(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("error retrieving applicant: %w", err)
	}

	return applicant, nil
}

func (r *ApplicantRepository) loadPosition(ctx context.Context, positionID int64) (*models.Position, error) {
	var position models.Position
	err := r.db.QueryRow(ctx, `
		SELECT id, title, quota, filled, created_at, updated_at
		FROM positions WHERE id = $1`, positionID).Scan(
		&position.ID,
		&position.Title,
		&position.Quota,
		&position.Filled,
		&position.CreatedAt,
		&position.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving assigned position: %w", err)
	}
	return &position, nil
}

// GetAll retrieves applicants filtered by status with pagination.
// An empty status returns applicants in every status.
func (r *ApplicantRepository) GetAll(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.Applicant, int64, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM applicants a` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applicants: %w", err)
	}

	query := `SELECT` + applicantColumns + `
		FROM applicants a` + whereClause +
		fmt.Sprintf(" ORDER BY a.created_at DESC OFFSET $%d LIMIT $%d", argIndex, argIndex+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applicants []*models.Applicant
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, err
		}
		applicants = append(applicants, applicant)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}

// UpdateStatus sets an applicant's status and position within a transaction
func (r *ApplicantRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status models.ApplicationStatus, positionID *int64) error {
	query := `
		UPDATE applicants
		SET status = $1, position_id = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := tx.Exec(ctx, query, status, positionID, id)
	if err != nil {
		return fmt.Errorf("error updating applicant status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicantNotFound
	}

	return nil
}

// UpdateDates rewrites an applicant's internship period
func (r *ApplicantRepository) UpdateDates(ctx context.Context, applicant *models.Applicant) error {
	query := `
		UPDATE applicants
		SET start_date = $1, end_date = $2, duration_days = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		applicant.StartDate, applicant.EndDate, applicant.DurationDays, applicant.ID)

	if err != nil {
		return fmt.Errorf("error updating applicant dates: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicantNotFound
	}

	return nil
}

// Delete deletes an applicant within a transaction. The caller releases
// the position seat when the applicant was accepted.
func (r *ApplicantRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `DELETE FROM applicants WHERE id = $1`

	cmdTag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting applicant: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicantNotFound
	}

	return nil
}

// CountByStatus returns applicant counts grouped by status
func (r *ApplicantRepository) CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM applicants GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting applicants by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ApplicationStatus]int64)
	for rows.Next() {
		var status models.ApplicationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountActiveInterns returns the number of accepted applicants whose
// internship period covers the current date
func (r *ApplicantRepository) CountActiveInterns(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM applicants
		WHERE status = $1 AND start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE`,
		models.StatusAccepted).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting active interns: %w", err)
	}

	return count, nil
}
