package store

import (
	"context"
	"sync"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/service"
)

// EventsStore holds the operator's event collection
type EventsStore struct {
	eventService service.EventService

	mu      sync.RWMutex
	events  []*domain.Event
	loading bool
	errMsg  string
}

// NewEventsStore creates a new EventsStore
func NewEventsStore(eventService service.EventService) *EventsStore {
	return &EventsStore{eventService: eventService}
}

func (s *EventsStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *EventsStore) fail(err error) bool {
	s.mu.Lock()
	s.loading = false
	s.errMsg = err.Error()
	s.mu.Unlock()
	return false
}

// Load fetches the operator's events into the store. Returns false on
// failure with the cause in Err.
func (s *EventsStore) Load(ctx context.Context, operatorID string) bool {
	s.setLoading()

	events, err := s.eventService.GetEvents(ctx, operatorID)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.events = events
	s.loading = false
	s.mu.Unlock()
	return true
}

// Create creates an event and prepends it to the collection. Returns nil on
// failure with the cause in Err.
func (s *EventsStore) Create(ctx context.Context, operatorID string, req *dto.CreateEventRequest) *domain.Event {
	s.setLoading()

	event, err := s.eventService.CreateEvent(ctx, operatorID, req)
	if err != nil {
		s.fail(err)
		return nil
	}

	s.mu.Lock()
	s.events = append([]*domain.Event{event}, s.events...)
	s.loading = false
	s.mu.Unlock()
	return event
}

// Update applies an update and replaces the cached entry. Returns nil on
// failure with the cause in Err.
func (s *EventsStore) Update(ctx context.Context, operatorID, id string, req *dto.UpdateEventRequest) *domain.Event {
	s.setLoading()

	event, err := s.eventService.UpdateEvent(ctx, operatorID, id, req)
	if err != nil {
		s.fail(err)
		return nil
	}

	s.mu.Lock()
	for i, e := range s.events {
		if e.ID == event.ID {
			s.events[i] = event
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return event
}

// Delete removes an event from the backend and the collection
func (s *EventsStore) Delete(ctx context.Context, operatorID, id string) bool {
	s.setLoading()

	if err := s.eventService.DeleteEvent(ctx, operatorID, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return true
}

// Events returns the cached collection
func (s *EventsStore) Events() []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

// GetByID returns the cached event with the given id, (nil, false) when it
// is not in the collection
func (s *EventsStore) GetByID(id string) (*domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Loading reports whether an action is in flight
func (s *EventsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message, "" when clear
func (s *EventsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}
