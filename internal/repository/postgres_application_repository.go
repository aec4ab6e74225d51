package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// applicationColumns defines the columns to select for applications
const applicationColumns = `id, event_id, sponsor_id, tier_id, status,
	COALESCE(message, '') as message, submitted_at, responded_at,
	COALESCE(response_message, '') as response_message`

// PostgresApplicationRepository implements ApplicationRepository using PostgreSQL
type PostgresApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresApplicationRepository creates a new PostgresApplicationRepository
func NewPostgresApplicationRepository(pool *pgxpool.Pool) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{pool: pool}
}

func scanApplication(row pgx.Row) (*domain.SponsorshipApplication, error) {
	a := &domain.SponsorshipApplication{}
	err := row.Scan(
		&a.ID,
		&a.EventID,
		&a.SponsorID,
		&a.TierID,
		&a.Status,
		&a.Message,
		&a.SubmittedAt,
		&a.RespondedAt,
		&a.ResponseMessage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *domain.SponsorshipApplication) error {
	query := `
		INSERT INTO sponsorship_applications (id, event_id, sponsor_id, tier_id, status, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		app.ID,
		app.EventID,
		app.SponsorID,
		app.TierID,
		app.Status,
		app.Message,
		app.SubmittedAt,
	)
	return err
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id string) (*domain.SponsorshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM sponsorship_applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

// ListBySponsor retrieves all applications submitted by a sponsor, newest first
func (r *PostgresApplicationRepository) ListBySponsor(ctx context.Context, sponsorID string) ([]*domain.SponsorshipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM sponsorship_applications
		WHERE sponsor_id = $1 ORDER BY submitted_at DESC`
	rows, err := r.pool.Query(ctx, query, sponsorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]*domain.SponsorshipApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus sets the status of an application
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE sponsorship_applications SET status = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}
