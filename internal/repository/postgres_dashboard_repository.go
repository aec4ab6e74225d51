package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// PostgresDashboardRepository implements DashboardRepository using PostgreSQL
type PostgresDashboardRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDashboardRepository creates a new PostgresDashboardRepository
func NewPostgresDashboardRepository(pool *pgxpool.Pool) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{pool: pool}
}

// SumCompletedPayments totals completed payments against the operator's
// contracts created in [from, to)
func (r *PostgresDashboardRepository) SumCompletedPayments(ctx context.Context, operatorID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN contracts c ON c.id = p.contract_id
		WHERE c.operator_id = $1
			AND p.status = $2
			AND c.created_at >= $3
			AND c.created_at < $4
	`
	var total int64
	err := r.pool.QueryRow(ctx, query, operatorID, domain.PaymentStatusCompleted, from, to).Scan(&total)
	return total, err
}

// ListCompletedPayments returns completed payments against the operator's
// contracts created at or after from, ordered by creation time
func (r *PostgresDashboardRepository) ListCompletedPayments(ctx context.Context, operatorID string, from time.Time) ([]*domain.Payment, error) {
	query := `
		SELECT p.id, p.contract_id, p.amount, p.status, p.created_at
		FROM payments p
		JOIN contracts c ON c.id = p.contract_id
		WHERE c.operator_id = $1
			AND p.status = $2
			AND c.created_at >= $3
		ORDER BY p.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, operatorID, domain.PaymentStatusCompleted, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p := &domain.Payment{}
		if err := rows.Scan(&p.ID, &p.ContractID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CountPublishedFutureEvents counts published events dated today or later.
// When createdBefore is non-nil, only events created before it count.
func (r *PostgresDashboardRepository) CountPublishedFutureEvents(ctx context.Context, operatorID, today string, createdBefore *time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM events
		WHERE operator_id = $1
			AND status = $2
			AND event_date >= $3
			AND ($4::timestamptz IS NULL OR created_at < $4)
	`
	var count int
	err := r.pool.QueryRow(ctx, query, operatorID, domain.EventStatusPublished, today, createdBefore).Scan(&count)
	return count, err
}

// CountPendingApplications counts pending applications on the operator's
// events. When submittedBefore is non-nil, only older submissions count.
func (r *PostgresDashboardRepository) CountPendingApplications(ctx context.Context, operatorID string, submittedBefore *time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sponsorship_applications a
		JOIN events e ON e.id = a.event_id
		WHERE e.operator_id = $1
			AND a.status = $2
			AND ($3::timestamptz IS NULL OR a.submitted_at < $3)
	`
	var count int
	err := r.pool.QueryRow(ctx, query, operatorID, domain.ApplicationStatusPending, submittedBefore).Scan(&count)
	return count, err
}
