package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// PostgresActivityRepository implements ActivityRepository using PostgreSQL
type PostgresActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresActivityRepository creates a new PostgresActivityRepository
func NewPostgresActivityRepository(pool *pgxpool.Pool) *PostgresActivityRepository {
	return &PostgresActivityRepository{pool: pool}
}

// Append records an activity item. Metadata is stored as JSONB.
func (r *PostgresActivityRepository) Append(ctx context.Context, item *domain.ActivityLogItem) error {
	query := `
		INSERT INTO activity_log (id, user_id, action_type, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var metadata interface{}
	if item.Metadata != nil {
		b, err := json.Marshal(item.Metadata)
		if err != nil {
			return err
		}
		metadata = b
	}
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.ActionType,
		item.EntityType,
		item.EntityID,
		metadata,
		item.CreatedAt,
	)
	return err
}

// ListByUser returns the user's most recent activity, newest first
func (r *PostgresActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ActivityLogItem, error) {
	query := `
		SELECT id, user_id, action_type, entity_type, entity_id, metadata, created_at
		FROM activity_log
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.ActivityLogItem, 0)
	for rows.Next() {
		it := &domain.ActivityLogItem{}
		var metadata []byte
		if err := rows.Scan(&it.ID, &it.UserID, &it.ActionType, &it.EntityType, &it.EntityID, &metadata, &it.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &it.Metadata); err != nil {
				return nil, err
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
