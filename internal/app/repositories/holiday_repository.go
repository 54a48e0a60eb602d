package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/pkg/apperrors"
	"github.com/arifsetiawan/magangdik/internal/pkg/workdays"
)

// HolidayRepository handles database operations for office holidays
type HolidayRepository struct {
	db *pgxpool.Pool
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{
		db: db,
	}
}

// Create creates a new holiday entry
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	query := `
		INSERT INTO holidays (holiday_date, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, holiday.Date, holiday.Description).Scan(&holiday.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrHolidayExists
		}
		return fmt.Errorf("error creating holiday: %w", err)
	}

	return nil
}

// GetByID retrieves a holiday by ID
func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*models.Holiday, error) {
	query := `
		SELECT id, holiday_date, description
		FROM holidays
		WHERE id = $1
	`

	var holiday models.Holiday
	err := r.db.QueryRow(ctx, query, id).Scan(&holiday.ID, &holiday.Date, &holiday.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("error retrieving holiday: %w", err)
	}

	return &holiday, nil
}

// GetAll retrieves all holidays ordered by date
func (r *HolidayRepository) GetAll(ctx context.Context) ([]*models.Holiday, error) {
	query := `
		SELECT id, holiday_date, description
		FROM holidays
		ORDER BY holiday_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		var holiday models.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Description); err != nil {
			return nil, err
		}
		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// GetHolidaySet loads all holiday dates from a given date onward as a
// lookup set for working-day calculations
func (r *HolidayRepository) GetHolidaySet(ctx context.Context, from time.Time) (workdays.HolidaySet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT holiday_date FROM holidays WHERE holiday_date >= $1`, from)
	if err != nil {
		return nil, fmt.Errorf("error loading holiday dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workdays.NewHolidaySet(dates), nil
}

// Delete deletes a holiday by ID
func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM holidays WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting holiday: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHolidayNotFound
	}

	return nil
}
