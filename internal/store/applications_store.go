package store

import (
	"context"
	"sync"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
)

// ApplicationsStore holds the sponsor's application collection
type ApplicationsStore struct {
	eventService service.EventService

	mu           sync.RWMutex
	applications []*domain.SponsorshipApplication
	loading      bool
	errMsg       string
}

// NewApplicationsStore creates a new ApplicationsStore
func NewApplicationsStore(eventService service.EventService) *ApplicationsStore {
	return &ApplicationsStore{eventService: eventService}
}

func (s *ApplicationsStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *ApplicationsStore) fail(err error) bool {
	s.mu.Lock()
	s.loading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
	return false
}

// Load fetches the sponsor's applications into the store
func (s *ApplicationsStore) Load(ctx context.Context, sponsorID string) bool {
	s.setLoading()

	apps, err := s.eventService.GetApplicationsBySponsor(ctx, sponsorID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.applications = apps
	s.loading = false
	s.mu.Unlock()
	return true
}

// Submit creates an application and prepends it to the collection. Returns
// nil on failure with the cause in Err.
func (s *ApplicationsStore) Submit(ctx context.Context, sponsorID string, req *dto.SubmitApplicationRequest) *domain.SponsorshipApplication {
	s.setLoading()

	app, err := s.eventService.SubmitApplication(ctx, sponsorID, req)
	if err != nil {
		s.fail(err)
		return nil
	}

	s.mu.Lock()
	s.applications = append([]*domain.SponsorshipApplication{app}, s.applications...)
	s.loading = false
	s.mu.Unlock()
	return app
}

// Withdraw moves a pending application to withdrawn and updates the cache
func (s *ApplicationsStore) Withdraw(ctx context.Context, sponsorID, applicationID string) bool {
	s.setLoading()

	app, err := s.eventService.WithdrawApplication(ctx, sponsorID, applicationID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	for i, a := range s.applications {
		if a.ID == app.ID {
			s.applications[i] = app
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return true
}

// Applications returns the cached collection
func (s *ApplicationsStore) Applications() []*domain.SponsorshipApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications
}

// Loading reports whether an action is in flight
func (s *ApplicationsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message, "" when clear
func (s *ApplicationsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
