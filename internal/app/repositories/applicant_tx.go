package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arifsetiawan/magangdik/internal/app/models"
	"github.com/arifsetiawan/magangdik/internal/db"
)

// ApplicantTx is the set of row operations available while deciding or
// deleting an applicant. All operations run on the same transaction so a
// status change and its position seat update commit or roll back together.
type ApplicantTx interface {
	GetApplicantForUpdate(ctx context.Context, id int64) (*models.Applicant, error)
	SetApplicantStatus(ctx context.Context, id int64, status models.ApplicationStatus, positionID *int64) error
	ClaimPositionSeat(ctx context.Context, positionID int64) error
	ReleasePositionSeat(ctx context.Context, positionID int64) error
	DeleteApplicant(ctx context.Context, id int64) error
}

// ApplicantTxRunner executes applicant unit-of-work functions inside a
// database transaction
type ApplicantTxRunner struct {
	pool       *pgxpool.Pool
	applicants *ApplicantRepository
	positions  *PositionRepository
}

// NewApplicantTxRunner creates a new transaction runner
func NewApplicantTxRunner(pool *pgxpool.Pool, applicants *ApplicantRepository, positions *PositionRepository) *ApplicantTxRunner {
	return &ApplicantTxRunner{
		pool:       pool,
		applicants: applicants,
		positions:  positions,
	}
}

// Do runs fn within a single database transaction
func (r *ApplicantTxRunner) Do(ctx context.Context, fn func(ctx context.Context, tx ApplicantTx) error) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &applicantTx{
			tx:         tx,
			applicants: r.applicants,
			positions:  r.positions,
		})
	})
}

type applicantTx struct {
	tx         pgx.Tx
	applicants *ApplicantRepository
	positions  *PositionRepository
}

func (t *applicantTx) GetApplicantForUpdate(ctx context.Context, id int64) (*models.Applicant, error) {
	return t.applicants.GetByIDForUpdate(ctx, t.tx, id)
}

func (t *applicantTx) SetApplicantStatus(ctx context.Context, id int64, status models.ApplicationStatus, positionID *int64) error {
	return t.applicants.UpdateStatus(ctx, t.tx, id, status, positionID)
}

func (t *applicantTx) ClaimPositionSeat(ctx context.Context, positionID int64) error {
	return t.positions.IncrementFilled(ctx, t.tx, positionID)
}

func (t *applicantTx) ReleasePositionSeat(ctx context.Context, positionID int64) error {
	return t.positions.DecrementFilled(ctx, t.tx, positionID)
}

func (t *applicantTx) DeleteApplicant(ctx context.Context, id int64) error {
	return t.applicants.Delete(ctx, t.tx, id)
}
