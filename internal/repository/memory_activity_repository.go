package repository

import (
	"context"
	"sort"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemoryActivityRepository implements ActivityRepository over a MemoryStore
type MemoryActivityRepository struct {
	store *MemoryStore
}

// NewMemoryActivityRepository creates a new MemoryActivityRepository
func NewMemoryActivityRepository(store *MemoryStore) *MemoryActivityRepository {
	return &MemoryActivityRepository{store: store}
}

// Append records an activity item
func (r *MemoryActivityRepository) Append(ctx context.Context, item *domain.ActivityLogItem) error {
	r.store.activityMu.Lock()
	defer r.store.activityMu.Unlock()

	r.store.activity = append(r.store.activity, cloneActivity(item))
	return nil
}

// ListByUser returns the user's most recent activity, newest first
func (r *MemoryActivityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ActivityLogItem, error) {
	r.store.activityMu.RLock()
	defer r.store.activityMu.RUnlock()

	items := make([]*domain.ActivityLogItem, 0)
	for _, it := range r.store.activity {
		if it.UserID == userID {
			items = append(items, cloneActivity(it))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
