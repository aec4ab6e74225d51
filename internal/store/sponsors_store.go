package store

import (
	"context"
	"sync"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
)

// SponsorsStore holds sponsor search results and the operator's bookmarks
type SponsorsStore struct {
	sponsorService service.SponsorService

	mu      sync.RWMutex
	results []*domain.SponsorProfile
	total   int
	page    int
	saved   []*domain.SponsorProfile
	loading bool
	errMsg  string
}

// NewSponsorsStore creates a new SponsorsStore
func NewSponsorsStore(sponsorService service.SponsorService) *SponsorsStore {
	return &SponsorsStore{sponsorService: sponsorService}
}

func (s *SponsorsStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *SponsorsStore) fail(err error) bool {
	s.mu.Lock()
	s.loading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
	return false
}

// Search runs a sponsor search and replaces the result set. Returns false
// on failure with the cause in Err; the previous results are kept.
func (s *SponsorsStore) Search(ctx context.Context, query *dto.SearchSponsorsQuery) bool {
	s.setLoading()

	result, err := s.sponsorService.SearchSponsors(ctx, query)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.results = result.Data
	s.total = result.Total
	s.page = result.Page
	s.loading = false
	s.mu.Unlock()
	return true
}

// Save bookmarks a sponsor and refreshes the saved list. Returns false on
// failure with the cause in Err.
func (s *SponsorsStore) Save(ctx context.Context, operatorID, sponsorID string) bool {
	s.setLoading()

	if _, err := s.sponsorService.SaveSponsor(ctx, operatorID, sponsorID); err != nil {
		return s.fail(err)
	}
	return s.LoadSaved(ctx, operatorID)
}

// Unsave removes a bookmark and drops it from the saved list
func (s *SponsorsStore) Unsave(ctx context.Context, operatorID, sponsorID string) bool {
	s.setLoading()

	if err := s.sponsorService.UnsaveSponsor(ctx, operatorID, sponsorID); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	for i, sp := range s.saved {
		if sp.ID == sponsorID {
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return true
}

// LoadSaved fetches the operator's bookmarked sponsors
func (s *SponsorsStore) LoadSaved(ctx context.Context, operatorID string) bool {
	s.setLoading()

	saved, err := s.sponsorService.GetSavedSponsors(ctx, operatorID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.saved = saved
	s.loading = false
	s.mu.Unlock()
	return true
}

// Results returns the current search results
func (s *SponsorsStore) Results() []*domain.SponsorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// Total returns the total reported by the last search
func (s *SponsorsStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Page returns the page of the last search
func (s *SponsorsStore) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Saved returns the cached bookmarks
func (s *SponsorsStore) Saved() []*domain.SponsorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}

// Loading reports whether an action is in flight
func (s *SponsorsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message, "" when clear
func (s *SponsorsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
