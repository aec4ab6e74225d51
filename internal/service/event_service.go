package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/pkg/activity"
	"github.com/The-boat-boat/sponsorreel/pkg/logger"
)

// EventService errors
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrTierNotFound          = errors.New("sponsorship tier not found")
	ErrNotEventOwner         = errors.New("event belongs to another operator")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationNotPending = errors.New("only pending applications can be withdrawn")
)

// Demographics age defaults applied when the payload omits a bound
const (
	defaultAgeRangeMin = 0
	defaultAgeRangeMax = 100
)

// EventService manages events, their tiers and demographics, and the
// sponsorship application lifecycle
type EventService interface {
	CreateEvent(ctx context.Context, operatorID string, req *dto.CreateEventRequest) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	// GetEvents returns the operator's events with tiers and demographics
	// attached, one entry per event
	GetEvents(ctx context.Context, operatorID string) ([]*domain.Event, error)
	// BrowseEvents returns published events for the public listing. Interest
	// tags are matched in-process after the primary query; the total count
	// deliberately reflects the primary query only.
	BrowseEvents(ctx context.Context, query *dto.BrowseEventsQuery) (*dto.BrowseEventsResponse, error)
	UpdateEvent(ctx context.Context, operatorID, id string, req *dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, operatorID, id string) error

	AddSponsorshipTier(ctx context.Context, operatorID, eventID string, req *dto.CreateTierRequest) (*domain.SponsorshipTier, error)
	UpdateSponsorshipTier(ctx context.Context, operatorID, tierID string, req *dto.UpdateTierRequest) (*domain.SponsorshipTier, error)
	DeleteSponsorshipTier(ctx context.Context, operatorID, tierID string) error

	// UpdateEventDemographics upserts the demographics record, overwriting
	// every field from the payload
	UpdateEventDemographics(ctx context.Context, operatorID, eventID string, req *dto.UpdateDemographicsRequest) (*domain.EventDemographics, error)

	SubmitApplication(ctx context.Context, sponsorID string, req *dto.SubmitApplicationRequest) (*domain.SponsorshipApplication, error)
	GetApplicationsBySponsor(ctx context.Context, sponsorID string) ([]*domain.SponsorshipApplication, error)
	WithdrawApplication(ctx context.Context, sponsorID, applicationID string) (*domain.SponsorshipApplication, error)
}

// eventService implements the EventService interface over either backend
type eventService struct {
	eventRepo    repository.EventRepository
	appRepo      repository.ApplicationRepository
	activityRepo repository.ActivityRepository
	publisher    activity.Publisher
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repository.EventRepository,
	appRepo repository.ApplicationRepository,
	activityRepo repository.ActivityRepository,
	publisher activity.Publisher,
) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		appRepo:      appRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

// recordActivity persists an activity item and fans it out to the stream.
// Activity is best-effort and never fails the calling operation.
func (s *eventService) recordActivity(ctx context.Context, userID, actionType, entityType, entityID string, metadata map[string]interface{}) {
	item := &domain.ActivityLogItem{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	}
	if err := s.activityRepo.Append(ctx, item); err != nil {
		logger.WarnCtx(ctx, "failed to record activity",
			zap.String("action_type", actionType), zap.Error(err))
		return
	}
	s.publisher.Publish(ctx, item)
}

// ownedEvent loads an event and verifies ownership
func (s *eventService) ownedEvent(ctx context.Context, operatorID, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.OperatorID != operatorID {
		return nil, ErrNotEventOwner
	}
	return event, nil
}

// CreateEvent creates a new event in draft status unless published explicitly
func (s *eventService) CreateEvent(ctx context.Context, operatorID string, req *dto.CreateEventRequest) (*domain.Event, error) {
	status := req.Status
	if status == "" {
		status = domain.EventStatusDraft
	}

	now := time.Now()
	event := &domain.Event{
		ID:                 uuid.New().String(),
		OperatorID:         operatorID,
		Title:              req.Title,
		Description:        req.Description,
		FilmTitle:          req.FilmTitle,
		EventDate:          req.EventDate,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		VenueName:          req.VenueName,
		Address:            req.Address,
		ExpectedAttendance: req.ExpectedAttendance,
		Status:             status,
		CoverImageURL:      req.CoverImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
		SponsorshipTiers:   []domain.SponsorshipTier{},
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, operatorID, "event_created", "event", event.ID,
		map[string]interface{}{"title": event.Title})
	return event, nil
}

// GetEvent retrieves an event by ID
func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// GetEvents lists the operator's events
func (s *eventService) GetEvents(ctx context.Context, operatorID string) ([]*domain.Event, error) {
	return s.eventRepo.ListByOperator(ctx, operatorID)
}

// BrowseEvents lists published events for the public listing
func (s *eventService) BrowseEvents(ctx context.Context, query *dto.BrowseEventsQuery) (*dto.BrowseEventsResponse, error) {
	query.SetDefaults()
	offset := (query.Page - 1) * query.Limit

	filter := repository.BrowseEventsFilter{
		Query:         query.Query,
		MinAttendance: query.MinAttendance,
		MaxAttendance: query.MaxAttendance,
		DateFrom:      query.DateFrom,
		DateTo:        query.DateTo,
	}
	events, total, err := s.eventRepo.Browse(ctx, filter, query.Limit, offset)
	if err != nil {
		return nil, err
	}

	// Interest tags are intersected here rather than in storage. The total
	// stays as the primary-query count, so a filtered page can hold fewer
	// items than the total implies.
	if len(query.Interests) > 0 {
		filtered := make([]*domain.Event, 0, len(events))
		for _, e := range events {
			if e.Demographics != nil && overlaps(e.Demographics.Interests, query.Interests) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	return &dto.BrowseEventsResponse{
		Events:     events,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
	}, nil
}

// overlaps reports whether the two sets share any element
func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// UpdateEvent applies non-nil fields to an owned event
func (s *eventService) UpdateEvent(ctx context.Context, operatorID, id string, req *dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.ownedEvent(ctx, operatorID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.FilmTitle != nil {
		event.FilmTitle = *req.FilmTitle
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.VenueName != nil {
		event.VenueName = *req.VenueName
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.ExpectedAttendance != nil {
		event.ExpectedAttendance = *req.ExpectedAttendance
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.CoverImageURL != nil {
		event.CoverImageURL = *req.CoverImageURL
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	if req.Status != nil && *req.Status == domain.EventStatusPublished {
		s.recordActivity(ctx, operatorID, "event_published", "event", event.ID,
			map[string]interface{}{"title": event.Title})
	}
	return event, nil
}

// DeleteEvent removes an owned event with its tiers and demographics
func (s *eventService) DeleteEvent(ctx context.Context, operatorID, id string) error {
	if _, err := s.ownedEvent(ctx, operatorID, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// AddSponsorshipTier appends a tier to an owned event. The new tier lands
// after existing ones: display_order is the current maximum plus one, or 1
// for the first tier.
func (s *eventService) AddSponsorshipTier(ctx context.Context, operatorID, eventID string, req *dto.CreateTierRequest) (*domain.SponsorshipTier, error) {
	if _, err := s.ownedEvent(ctx, operatorID, eventID); err != nil {
		return nil, err
	}

	maxOrder, err := s.eventRepo.MaxTierDisplayOrder(ctx, eventID)
	if err != nil {
		return nil, err
	}

	benefits := req.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	tier := &domain.SponsorshipTier{
		ID:           uuid.New().String(),
		EventID:      eventID,
		Name:         req.Name,
		Price:        req.Price,
		Benefits:     benefits,
		MaxSponsors:  req.MaxSponsors,
		DisplayOrder: maxOrder + 1,
		IsActive:     true,
	}
	if err := s.eventRepo.CreateTier(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// ownedTier loads a tier and verifies the owning event belongs to the operator
func (s *eventService) ownedTier(ctx context.Context, operatorID, tierID string) (*domain.SponsorshipTier, error) {
	tier, err := s.eventRepo.GetTierByID(ctx, tierID)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrTierNotFound
	}
	if _, err := s.ownedEvent(ctx, operatorID, tier.EventID); err != nil {
		return nil, err
	}
	return tier, nil
}

// UpdateSponsorshipTier applies non-nil fields to a tier
func (s *eventService) UpdateSponsorshipTier(ctx context.Context, operatorID, tierID string, req *dto.UpdateTierRequest) (*domain.SponsorshipTier, error) {
	tier, err := s.ownedTier(ctx, operatorID, tierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tier.Name = *req.Name
	}
	if req.Price != nil {
		tier.Price = *req.Price
	}
	if req.Benefits != nil {
		tier.Benefits = *req.Benefits
	}
	if req.MaxSponsors != nil {
		tier.MaxSponsors = *req.MaxSponsors
	}
	if req.IsActive != nil {
		tier.IsActive = *req.IsActive
	}

	if err := s.eventRepo.UpdateTier(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// DeleteSponsorshipTier removes a tier from an owned event
func (s *eventService) DeleteSponsorshipTier(ctx context.Context, operatorID, tierID string) error {
	if _, err := s.ownedTier(ctx, operatorID, tierID); err != nil {
		return err
	}
	return s.eventRepo.DeleteTier(ctx, tierID)
}

// UpdateEventDemographics upserts the demographics record. Every field is
// overwritten from the payload; omitted bounds fall back to 0 and 100 and
// omitted lists become empty. Previously stored values do not survive.
func (s *eventService) UpdateEventDemographics(ctx context.Context, operatorID, eventID string, req *dto.UpdateDemographicsRequest) (*domain.EventDemographics, error) {
	if _, err := s.ownedEvent(ctx, operatorID, eventID); err != nil {
		return nil, err
	}

	d := &domain.EventDemographics{
		EventID:     eventID,
		AgeRangeMin: defaultAgeRangeMin,
		AgeRangeMax: defaultAgeRangeMax,
		Interests:   []string{},
		CustomTags:  []string{},
	}
	if req.AgeRangeMin != nil {
		d.AgeRangeMin = *req.AgeRangeMin
	}
	if req.AgeRangeMax != nil {
		d.AgeRangeMax = *req.AgeRangeMax
	}
	if req.Interests != nil {
		d.Interests = req.Interests
	}
	if req.CustomTags != nil {
		d.CustomTags = req.CustomTags
	}

	existing, err := s.eventRepo.GetDemographics(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		d.ID = uuid.New().String()
		if err := s.eventRepo.CreateDemographics(ctx, d); err != nil {
			return nil, err
		}
	} else {
		d.ID = existing.ID
		if err := s.eventRepo.UpdateDemographics(ctx, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// SubmitApplication creates a pending application for a tier
func (s *eventService) SubmitApplication(ctx context.Context, sponsorID string, req *dto.SubmitApplicationRequest) (*domain.SponsorshipApplication, error) {
	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	tier, err := s.eventRepo.GetTierByID(ctx, req.TierID)
	if err != nil {
		return nil, err
	}
	if tier == nil || tier.EventID != req.EventID {
		return nil, ErrTierNotFound
	}

	app := &domain.SponsorshipApplication{
		ID:          uuid.New().String(),
		EventID:     req.EventID,
		SponsorID:   sponsorID,
		TierID:      req.TierID,
		Status:      domain.ApplicationStatusPending,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, event.OperatorID, "application_received", "application", app.ID,
		map[string]interface{}{"event_id": event.ID, "tier_id": tier.ID})
	return app, nil
}

// GetApplicationsBySponsor lists the sponsor's applications
func (s *eventService) GetApplicationsBySponsor(ctx context.Context, sponsorID string) ([]*domain.SponsorshipApplication, error) {
	return s.appRepo.ListBySponsor(ctx, sponsorID)
}

// WithdrawApplication moves a pending application to withdrawn. No other
// status can be withdrawn.
func (s *eventService) WithdrawApplication(ctx context.Context, sponsorID, applicationID string) (*domain.SponsorshipApplication, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.SponsorID != sponsorID {
		return nil, ErrApplicationNotFound
	}
	if app.Status != domain.ApplicationStatusPending {
		return nil, ErrApplicationNotPending
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatusWithdrawn
	return app, nil
}
