package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
)

// PositionRepository handles database operations for internship positions
type PositionRepository struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) *PositionRepository {
	return &PositionRepository{
		db: db,
	}
}

// Create creates a new position
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM positions WHERE LOWER(title) = LOWER($1))`,
		position.Title).Scan(&exists)

	if err != nil {
		return fmt.Errorf("error checking position existence: %w", err)
	}

	if exists {
		return apperrors.ErrPositionExists
	}

	query := `
		INSERT INTO positions (title, quota, filled)
		VALUES ($1, $2, 0)
		RETURNING id, filled, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query, position.Title, position.Quota).Scan(
		&position.ID, &position.Filled, &position.CreatedAt, &position.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating position: %w", err)
	}

	return nil
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	query := `
		SELECT id, title, quota, filled, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var position models.Position
	err := r.db.QueryRow(ctx, query, id).Scan(
		&position.ID,
		&position.Title,
		&position.Quota,
		&position.Filled,
		&position.CreatedAt,
		&position.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}

	return &position, nil
}

// GetAll retrieves all positions
func (r *PositionRepository) GetAll(ctx context.Context) ([]*models.Position, error) {
	query := `
		SELECT id, title, quota, filled, created_at, updated_at
		FROM positions
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []*models.Position
	for rows.Next() {
		var position models.Position
		if err := rows.Scan(
			&position.ID,
			&position.Title,
			&position.Quota,
			&position.Filled,
			&position.CreatedAt,
			&position.UpdatedAt,
		); err != nil {
			return nil, err
		}
		positions = append(positions, &position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// Update updates a position's title and quota. Quota may not be lowered
// below the number of seats already filled.
func (r *PositionRepository) Update(ctx context.Context, position *models.Position) error {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM positions WHERE LOWER(title) = LOWER($1) AND id != $2)`,
		position.Title, position.ID).Scan(&exists)

	if err != nil {
		return fmt.Errorf("error checking position uniqueness: %w", err)
	}

	if exists {
		return apperrors.ErrPositionExists
	}

	query := `
		UPDATE positions
		SET title = $1, quota = $2, updated_at = NOW()
		WHERE id = $3 AND filled <= $2
	`

	cmdTag, err := r.db.Exec(ctx, query, position.Title, position.Quota, position.ID)
	if err != nil {
		return fmt.Errorf("error updating position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing row from a quota below the filled count
		if _, err := r.GetByID(ctx, position.ID); err != nil {
			return err
		}
		return apperrors.NewConflictError("Quota cannot be lower than the number of accepted applicants")
	}

	return nil
}

// IncrementFilled claims one seat on a position within a transaction.
// The increment only succeeds while filled is below quota; zero affected
// rows with an existing position means the position is full.
func (r *PositionRepository) IncrementFilled(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `
		UPDATE positions
		SET filled = filled + 1, updated_at = NOW()
		WHERE id = $1 AND filled < quota
	`

	cmdTag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error incrementing filled count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM positions WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking position existence: %w", err)
		}
		if !exists {
			return apperrors.ErrPositionNotFound
		}
		return apperrors.ErrPositionFull
	}

	return nil
}

// DecrementFilled releases one seat on a position within a transaction.
// The filled count never drops below zero.
func (r *PositionRepository) DecrementFilled(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `
		UPDATE positions
		SET filled = filled - 1, updated_at = NOW()
		WHERE id = $1 AND filled > 0
	`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error decrementing filled count: %w", err)
	}

	return nil
}

// IsReferenced checks whether any applicant is assigned to the position
func (r *PositionRepository) IsReferenced(ctx context.Context, id int64) (bool, error) {
	var referenced bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applicants WHERE position_id = $1)`,
		id).Scan(&referenced)

	if err != nil {
		return false, fmt.Errorf("error checking position references: %w", err)
	}

	return referenced, nil
}

// Delete deletes a position by ID. Positions referenced by applicants
// cannot be deleted.
func (r *PositionRepository) Delete(ctx context.Context, id int64) error {
	referenced, err := r.IsReferenced(ctx, id)
	if err != nil {
		return err
	}

	if referenced {
		return apperrors.ErrPositionReferenced
	}

	query := `DELETE FROM positions WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// QuotaSummary returns the total quota and filled seats across all positions
func (r *PositionRepository) QuotaSummary(ctx context.Context) (totalQuota, totalFilled int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quota), 0), COALESCE(SUM(filled), 0) FROM positions`,
	).Scan(&totalQuota, &totalFilled)

	if err != nil {
		return 0, 0, fmt.Errorf("error summarizing position quotas: %w", err)
	}

	return totalQuota, totalFilled, nil
}
