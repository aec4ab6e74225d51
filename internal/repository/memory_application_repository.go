package repository

import (
	"context"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemoryApplicationRepository implements ApplicationRepository over a
// MemoryStore
type MemoryApplicationRepository struct {
	store *MemoryStore
}

// NewMemoryApplicationRepository creates a new MemoryApplicationRepository
func NewMemoryApplicationRepository(store *MemoryStore) *MemoryApplicationRepository {
	return &MemoryApplicationRepository{store: store}
}

// Create inserts a new application
func (r *MemoryApplicationRepository) Create(ctx context.Context, app *domain.SponsorshipApplication) error {
	r.store.appsMu.Lock()
	defer r.store.appsMu.Unlock()

	r.store.apps = append(r.store.apps, cloneApplication(app))
	return nil
}

// GetByID returns an application by id, (nil, nil) when absent
func (r *MemoryApplicationRepository) GetByID(ctx context.Context, id string) (*domain.SponsorshipApplication, error) {
	r.store.appsMu.RLock()
	defer r.store.appsMu.RUnlock()

	for _, a := range r.store.apps {
		if a.ID == id {
			return cloneApplication(a), nil
		}
	}
	return nil, nil
}

// ListBySponsor returns all applications submitted by a sponsor
func (r *MemoryApplicationRepository) ListBySponsor(ctx context.Context, sponsorID string) ([]*domain.SponsorshipApplication, error) {
	r.store.appsMu.RLock()
	defer r.store.appsMu.RUnlock()

	apps := make([]*domain.SponsorshipApplication, 0)
	for _, a := range r.store.apps {
		if a.SponsorID == sponsorID {
			apps = append(apps, cloneApplication(a))
		}
	}
	return apps, nil
}

// UpdateStatus sets the status of an application
func (r *MemoryApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.store.appsMu.Lock()
	defer r.store.appsMu.Unlock()

	for _, a := range r.store.apps {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return nil
}
