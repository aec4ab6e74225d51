package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemorySponsorRepository implements sponsor and saved-sponsor data access
// over a MemoryStore
type MemorySponsorRepository struct {
	store *MemoryStore
}

// NewMemorySponsorRepository creates a new MemorySponsorRepository
func NewMemorySponsorRepository(store *MemoryStore) *MemorySponsorRepository {
	return &MemorySponsorRepository{store: store}
}

// ListFiltered returns all sponsors matching the storage-level filters,
// unpaginated. The fixture-backed search paginates after score filtering.
func (r *MemorySponsorRepository) ListFiltered(ctx context.Context, filter SponsorFilter) ([]*domain.SponsorProfile, error) {
	r.store.sponsorsMu.RLock()
	defer r.store.sponsorsMu.RUnlock()

	matched := make([]*domain.SponsorProfile, 0)
	for _, sp := range r.store.sponsors {
		if !matchesSponsorFilter(sp, filter) {
			continue
		}
		matched = append(matched, cloneSponsor(sp))
	}
	return matched, nil
}

func matchesSponsorFilter(sp *domain.SponsorProfile, filter SponsorFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		companyName := ""
		if sp.Profile != nil {
			companyName = strings.ToLower(sp.Profile.CompanyName)
		}
		if !strings.Contains(companyName, q) &&
			!strings.Contains(strings.ToLower(sp.Description), q) &&
			!strings.Contains(strings.ToLower(sp.BusinessType), q) {
			return false
		}
	}
	if len(filter.BusinessTypes) > 0 && !containsString(filter.BusinessTypes, sp.BusinessType) {
		return false
	}
	if len(filter.BudgetTiers) > 0 {
		found := false
		for _, t := range filter.BudgetTiers {
			if t == sp.BudgetTier {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// GetByID returns a sponsor profile by id, (nil, nil) when absent
func (r *MemorySponsorRepository) GetByID(ctx context.Context, id string) (*domain.SponsorProfile, error) {
	r.store.sponsorsMu.RLock()
	defer r.store.sponsorsMu.RUnlock()

	for _, sp := range r.store.sponsors {
		if sp.ID == id {
			return cloneSponsor(sp), nil
		}
	}
	return nil, nil
}

// GetByProfileID returns the sponsor profile linked to a profile id,
// (nil, nil) when absent
func (r *MemorySponsorRepository) GetByProfileID(ctx context.Context, profileID string) (*domain.SponsorProfile, error) {
	r.store.sponsorsMu.RLock()
	defer r.store.sponsorsMu.RUnlock()

	for _, sp := range r.store.sponsors {
		if sp.ProfileID == profileID {
			return cloneSponsor(sp), nil
		}
	}
	return nil, nil
}

// Update overwrites a sponsor profile row
func (r *MemorySponsorRepository) Update(ctx context.Context, sponsor *domain.SponsorProfile) error {
	r.store.sponsorsMu.Lock()
	defer r.store.sponsorsMu.Unlock()

	for i, sp := range r.store.sponsors {
		if sp.ID == sponsor.ID {
			r.store.sponsors[i] = cloneSponsor(sponsor)
			return nil
		}
	}
	return nil
}

// ListBusinessTypes returns the distinct business types, sorted
func (r *MemorySponsorRepository) ListBusinessTypes(ctx context.Context) ([]string, error) {
	r.store.sponsorsMu.RLock()
	defer r.store.sponsorsMu.RUnlock()

	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, sp := range r.store.sponsors {
		if _, ok := seen[sp.BusinessType]; ok {
			continue
		}
		seen[sp.BusinessType] = struct{}{}
		types = append(types, sp.BusinessType)
	}
	sort.Strings(types)
	return types, nil
}

// SaveSponsor bookmarks a sponsor for an operator. Saving an already-saved
// pair returns the existing record unchanged.
func (r *MemorySponsorRepository) SaveSponsor(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error) {
	r.store.savedMu.Lock()
	defer r.store.savedMu.Unlock()

	for _, sv := range r.store.saved {
		if sv.OperatorID == operatorID && sv.SponsorID == sponsorID {
			cp := *sv
			return &cp, nil
		}
	}

	saved := &domain.SavedSponsor{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		SponsorID:  sponsorID,
		CreatedAt:  now(),
	}
	r.store.saved = append(r.store.saved, saved)

	cp := *saved
	return &cp, nil
}

// UnsaveSponsor removes a bookmark; removing a missing pair is a no-op
func (r *MemorySponsorRepository) UnsaveSponsor(ctx context.Context, operatorID, sponsorID string) error {
	r.store.savedMu.Lock()
	defer r.store.savedMu.Unlock()

	kept := r.store.saved[:0]
	for _, sv := range r.store.saved {
		if sv.OperatorID == operatorID && sv.SponsorID == sponsorID {
			continue
		}
		kept = append(kept, sv)
	}
	r.store.saved = kept
	return nil
}

// ListSaved returns the operator's bookmarks
func (r *MemorySponsorRepository) ListSaved(ctx context.Context, operatorID string) ([]*domain.SavedSponsor, error) {
	r.store.savedMu.RLock()
	defer r.store.savedMu.RUnlock()

	saved := make([]*domain.SavedSponsor, 0)
	for _, sv := range r.store.saved {
		if sv.OperatorID == operatorID {
			cp := *sv
			saved = append(saved, &cp)
		}
	}
	return saved, nil
}
