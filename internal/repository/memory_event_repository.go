package repository

import (
	"context"
	"strings"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemoryEventRepository implements EventRepository over a MemoryStore
type MemoryEventRepository struct {
	store *MemoryStore
}

// NewMemoryEventRepository creates a new MemoryEventRepository
func NewMemoryEventRepository(store *MemoryStore) *MemoryEventRepository {
	return &MemoryEventRepository{store: store}
}

// Create inserts a new event
func (r *MemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	r.store.events = append(r.store.events, cloneEvent(event))
	return nil
}

// GetByID returns the event with children attached, (nil, nil) when absent
func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	for _, e := range r.store.events {
		if e.ID == id {
			return cloneEvent(e), nil
		}
	}
	return nil, nil
}

// ListByOperator returns all events owned by operatorID. The collection
// holds one entry per event, so de-duplication is inherently satisfied.
func (r *MemoryEventRepository) ListByOperator(ctx context.Context, operatorID string) ([]*domain.Event, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	events := make([]*domain.Event, 0)
	for _, e := range r.store.events {
		if e.OperatorID == operatorID {
			events = append(events, cloneEvent(e))
		}
	}
	return events, nil
}

// Browse returns published events matching the filter plus the total count
func (r *MemoryEventRepository) Browse(ctx context.Context, filter BrowseEventsFilter, limit, offset int) ([]*domain.Event, int, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	matched := make([]*domain.Event, 0)
	for _, e := range r.store.events {
		if e.Status != domain.EventStatusPublished {
			continue
		}
		if !matchesBrowseFilter(e, filter) {
			continue
		}
		matched = append(matched, e)
	}

	total := len(matched)

	if offset >= len(matched) {
		return []*domain.Event{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*domain.Event, 0, end-offset)
	for _, e := range matched[offset:end] {
		page = append(page, cloneEvent(e))
	}
	return page, total, nil
}

func matchesBrowseFilter(e *domain.Event, filter BrowseEventsFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.FilmTitle), q) {
			return false
		}
	}
	if filter.MinAttendance > 0 && e.ExpectedAttendance < filter.MinAttendance {
		return false
	}
	if filter.MaxAttendance > 0 && e.ExpectedAttendance > filter.MaxAttendance {
		return false
	}
	// Dates are YYYY-MM-DD strings, so lexical comparison is chronological
	if filter.DateFrom != "" && e.EventDate < filter.DateFrom {
		return false
	}
	if filter.DateTo != "" && e.EventDate > filter.DateTo {
		return false
	}
	return true
}

// Update overwrites an event row (children untouched)
func (r *MemoryEventRepository) Update(ctx context.Context, event *domain.Event) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for i, e := range r.store.events {
		if e.ID == event.ID {
			updated := cloneEvent(event)
			// Children are managed through their own operations
			updated.SponsorshipTiers = e.SponsorshipTiers
			updated.Demographics = e.Demographics
			r.store.events[i] = updated
			return nil
		}
	}
	return nil
}

// Delete removes an event and its children
func (r *MemoryEventRepository) Delete(ctx context.Context, id string) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for i, e := range r.store.events {
		if e.ID == id {
			r.store.events = append(r.store.events[:i], r.store.events[i+1:]...)
			return nil
		}
	}
	return nil
}

// CreateTier appends a tier to its event
func (r *MemoryEventRepository) CreateTier(ctx context.Context, tier *domain.SponsorshipTier) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for _, e := range r.store.events {
		if e.ID == tier.EventID {
			e.SponsorshipTiers = append(e.SponsorshipTiers, *cloneTier(tier))
			return nil
		}
	}
	return nil
}

// GetTierByID returns a tier by id, (nil, nil) when absent
func (r *MemoryEventRepository) GetTierByID(ctx context.Context, id string) (*domain.SponsorshipTier, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	for _, e := range r.store.events {
		for i := range e.SponsorshipTiers {
			if e.SponsorshipTiers[i].ID == id {
				return cloneTier(&e.SponsorshipTiers[i]), nil
			}
		}
	}
	return nil, nil
}

// MaxTierDisplayOrder returns the highest display_order, 0 when none exist
func (r *MemoryEventRepository) MaxTierDisplayOrder(ctx context.Context, eventID string) (int, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	max := 0
	for _, e := range r.store.events {
		if e.ID != eventID {
			continue
		}
		for i := range e.SponsorshipTiers {
			if e.SponsorshipTiers[i].DisplayOrder > max {
				max = e.SponsorshipTiers[i].DisplayOrder
			}
		}
	}
	return max, nil
}

// UpdateTier overwrites a tier in place
func (r *MemoryEventRepository) UpdateTier(ctx context.Context, tier *domain.SponsorshipTier) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for _, e := range r.store.events {
		for i := range e.SponsorshipTiers {
			if e.SponsorshipTiers[i].ID == tier.ID {
				e.SponsorshipTiers[i] = *cloneTier(tier)
				return nil
			}
		}
	}
	return nil
}

// DeleteTier removes a tier by id
func (r *MemoryEventRepository) DeleteTier(ctx context.Context, id string) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for _, e := range r.store.events {
		for i := range e.SponsorshipTiers {
			if e.SponsorshipTiers[i].ID == id {
				e.SponsorshipTiers = append(e.SponsorshipTiers[:i], e.SponsorshipTiers[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// GetDemographics returns the event's demographics, (nil, nil) when absent
func (r *MemoryEventRepository) GetDemographics(ctx context.Context, eventID string) (*domain.EventDemographics, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	for _, e := range r.store.events {
		if e.ID == eventID {
			return cloneDemographics(e.Demographics), nil
		}
	}
	return nil, nil
}

// CreateDemographics attaches a demographics record to its event
func (r *MemoryEventRepository) CreateDemographics(ctx context.Context, d *domain.EventDemographics) error {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()

	for _, e := range r.store.events {
		if e.ID == d.EventID {
			e.Demographics = cloneDemographics(d)
			return nil
		}
	}
	return nil
}

// UpdateDemographics overwrites the event's demographics record
func (r *MemoryEventRepository) UpdateDemographics(ctx context.Context, d *domain.EventDemographics) error {
	return r.CreateDemographics(ctx, d)
}
