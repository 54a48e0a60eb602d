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

// ResearchRequestRepository handles database operations for research permit requests
type ResearchRequestRepository struct {
	db *pgxpool.Pool
}

// NewResearchRequestRepository creates a new research request repository
func NewResearchRequestRepository(db *pgxpool.Pool) *ResearchRequestRepository {
	return &ResearchRequestRepository{
		db: db,
	}
}

const researchColumns = `
	id, full_name, identity_number, email, phone, institution,
	title, subject, start_date, end_date, status, created_at, updated_at`

func scanResearchRequest(row pgx.Row) (*models.ResearchRequest, error) {
	var request models.ResearchRequest
	err := row.Scan(
		&request.ID,
		&request.FullName,
		&request.IdentityNumber,
		&request.Email,
		&request.Phone,
		&request.Institution,
		&request.Title,
		&request.Subject,
		&request.StartDate,
		&request.EndDate,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create creates a new research permit request with status PENDING
func (r *ResearchRequestRepository) Create(ctx context.Context, request *models.ResearchRequest) error {
	query := `
		INSERT INTO research_requests (
			full_name, identity_number, email, phone, institution,
			title, subject, start_date, end_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		request.FullName,
		request.IdentityNumber,
		request.Email,
		request.Phone,
		request.Institution,
		request.Title,
		request.Subject,
		request.StartDate,
		request.EndDate,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating research request: %w", err)
	}

	return nil
}

// GetByID retrieves a research request by ID
func (r *ResearchRequestRepository) GetByID(ctx context.Context, id int64) (*models.ResearchRequest, error) {
	query := `SELECT` + researchColumns + ` FROM research_requests WHERE id = $1`

	request, err := scanResearchRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResearchNotFound
		}
		return nil, fmt.Errorf("error retrieving research request: %w", err)
	}

	return request, nil
}

// GetAll retrieves research requests filtered by status with pagination
func (r *ResearchRequestRepository) GetAll(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]*models.ResearchRequest, int64, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM research_requests` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting research requests: %w", err)
	}

	query := `SELECT` + researchColumns + ` FROM research_requests` + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", argIndex, argIndex+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []*models.ResearchRequest
	for rows.Next() {
		request, err := scanResearchRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateStatus sets a research request's status
func (r *ResearchRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	query := `
		UPDATE research_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating research request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchNotFound
	}

	return nil
}

// Delete deletes a research request by ID
func (r *ResearchRequestRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM research_requests WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting research request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchNotFound
	}

	return nil
}

// CountByStatus returns research request counts grouped by status
func (r *ResearchRequestRepository) CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM research_requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting research requests by status: %w", err)
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
