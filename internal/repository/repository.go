package repository

import (
	"context"
	"time"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// ProfileRepository defines data access for account profiles
type ProfileRepository interface {
	// Create inserts a new profile
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByID retrieves a profile by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	// GetByEmail retrieves a profile by email, (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// Update overwrites a profile row
	Update(ctx context.Context, profile *domain.Profile) error
}

// Credential is an identity record held separately from the profile.
// The identity store and the profile store are allowed to be inconsistent.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CredentialRepository defines data access for identity credentials
type CredentialRepository interface {
	// Create inserts a new credential
	Create(ctx context.Context, cred *Credential) error
	// GetByEmail retrieves a credential by email, (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*Credential, error)
}

// BrowseEventsFilter holds the primary-query filters for public event
// browsing. Interest tags are intersected in-process after this query.
type BrowseEventsFilter struct {
	Query         string
	MinAttendance int
	MaxAttendance int
	DateFrom      string // YYYY-MM-DD, inclusive
	DateTo        string // YYYY-MM-DD, inclusive
}

// EventRepository defines data access for events and their nested
// sponsorship tiers and demographics
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// GetByID returns the event with tiers and demographics attached,
	// (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// ListByOperator returns all events owned by operatorID with children
	// attached, de-duplicated by event id
	ListByOperator(ctx context.Context, operatorID string) ([]*domain.Event, error)
	// Browse returns published events matching the filter plus the total
	// matching count (computed before any in-process interest filtering)
	Browse(ctx context.Context, filter BrowseEventsFilter, limit, offset int) ([]*domain.Event, int, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error

	// Tiers
	CreateTier(ctx context.Context, tier *domain.SponsorshipTier) error
	GetTierByID(ctx context.Context, id string) (*domain.SponsorshipTier, error)
	// MaxTierDisplayOrder returns the highest display_order for the event,
	// 0 when the event has no tiers
	MaxTierDisplayOrder(ctx context.Context, eventID string) (int, error)
	UpdateTier(ctx context.Context, tier *domain.SponsorshipTier) error
	DeleteTier(ctx context.Context, id string) error

	// Demographics
	GetDemographics(ctx context.Context, eventID string) (*domain.EventDemographics, error)
	CreateDemographics(ctx context.Context, d *domain.EventDemographics) error
	UpdateDemographics(ctx context.Context, d *domain.EventDemographics) error
}

// ApplicationRepository defines data access for sponsorship applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.SponsorshipApplication) error
	GetByID(ctx context.Context, id string) (*domain.SponsorshipApplication, error)
	ListBySponsor(ctx context.Context, sponsorID string) ([]*domain.SponsorshipApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// SponsorFilter holds the storage-level filters for sponsor search.
// Match-score filtering happens in the service layer.
type SponsorFilter struct {
	Query         string
	BusinessTypes []string
	BudgetTiers   []domain.BudgetTier
}

// SponsorRepository defines the sponsor data access shared by both backends.
// The search entry points differ per backend and live on the concrete types:
// the fixture-backed repository scans everything (ListFiltered) so the
// service can paginate after score filtering, while the SQL repository pages
// at the database (SearchPage/CountFiltered) and the service filters the page.
type SponsorRepository interface {
	// GetByID retrieves a sponsor profile by id, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.SponsorProfile, error)
	// GetByProfileID retrieves the sponsor profile linked to a profile id,
	// (nil, nil) when absent
	GetByProfileID(ctx context.Context, profileID string) (*domain.SponsorProfile, error)
	// Update overwrites a sponsor profile row
	Update(ctx context.Context, sponsor *domain.SponsorProfile) error
	// ListBusinessTypes returns the distinct business types, sorted
	ListBusinessTypes(ctx context.Context) ([]string, error)
	// SaveSponsor bookmarks a sponsor for an operator; saving an existing
	// pair returns the prior record unchanged
	SaveSponsor(ctx context.Context, operatorID, sponsorID string) (*domain.SavedSponsor, error)
	// UnsaveSponsor removes a bookmark; a missing pair is a no-op
	UnsaveSponsor(ctx context.Context, operatorID, sponsorID string) error
	// ListSaved returns the operator's bookmarks
	ListSaved(ctx context.Context, operatorID string) ([]*domain.SavedSponsor, error)
}

// ActivityRepository defines data access for the append-only activity log
type ActivityRepository interface {
	Append(ctx context.Context, item *domain.ActivityLogItem) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ActivityLogItem, error)
}

// DashboardRepository exposes the aggregate queries backing operator
// dashboards. All monetary values are returned in cents.
type DashboardRepository interface {
	// SumCompletedPayments totals completed payments against the operator's
	// contracts created in [from, to)
	SumCompletedPayments(ctx context.Context, operatorID string, from, to time.Time) (int64, error)
	// ListCompletedPayments returns completed payments against the operator's
	// contracts created at or after from, ordered by creation time
	ListCompletedPayments(ctx context.Context, operatorID string, from time.Time) ([]*domain.Payment, error)
	// CountPublishedFutureEvents counts published events dated today or later.
	// When createdBefore is non-nil, only events created before it count.
	CountPublishedFutureEvents(ctx context.Context, operatorID, today string, createdBefore *time.Time) (int, error)
	// CountPendingApplications counts pending applications on the operator's
	// events. When submittedBefore is non-nil, only older submissions count.
	CountPendingApplications(ctx context.Context, operatorID string, submittedBefore *time.Time) (int, error)
}
