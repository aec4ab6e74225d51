package repository

import (
	"sync"
	"time"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemoryUser pairs a profile with its password hash in the self-contained
// auth backend
type MemoryUser struct {
	Profile      *domain.Profile
	PasswordHash string
}

// SeedData is the initial dataset a MemoryStore is constructed with
type SeedData struct {
	Users         []*MemoryUser
	Events        []*domain.Event
	Sponsors      []*domain.SponsorProfile
	SavedSponsors []*domain.SavedSponsor
	Applications  []*domain.SponsorshipApplication
	Contracts     []*domain.Contract
	Payments      []*domain.Payment
	Activity      []*domain.ActivityLogItem
}

// MemoryStore holds all collections for the fixture-backed data access
// layer. It is constructed with seed data and injected into the memory
// repositories; there is no package-level instance. Each collection has
// its own lock so repositories are safe for concurrent use.
type MemoryStore struct {
	usersMu sync.RWMutex
	users   map[string]*MemoryUser // keyed by email

	eventsMu sync.RWMutex
	events   []*domain.Event

	sponsorsMu sync.RWMutex
	sponsors   []*domain.SponsorProfile

	savedMu sync.RWMutex
	saved   []*domain.SavedSponsor

	appsMu sync.RWMutex
	apps   []*domain.SponsorshipApplication

	contractsMu sync.RWMutex
	contracts   []*domain.Contract

	paymentsMu sync.RWMutex
	payments   []*domain.Payment

	activityMu sync.RWMutex
	activity   []*domain.ActivityLogItem
}

// NewMemoryStore creates a store populated from seed. A nil seed yields an
// empty store.
func NewMemoryStore(seed *SeedData) *MemoryStore {
	s := &MemoryStore{
		users: make(map[string]*MemoryUser),
	}
	if seed == nil {
		return s
	}

	for _, u := range seed.Users {
		s.users[u.Profile.Email] = &MemoryUser{
			Profile:      cloneProfile(u.Profile),
			PasswordHash: u.PasswordHash,
		}
	}
	for _, e := range seed.Events {
		s.events = append(s.events, cloneEvent(e))
	}
	for _, sp := range seed.Sponsors {
		s.sponsors = append(s.sponsors, cloneSponsor(sp))
	}
	for _, sv := range seed.SavedSponsors {
		cp := *sv
		s.saved = append(s.saved, &cp)
	}
	for _, a := range seed.Applications {
		cp := *a
		s.apps = append(s.apps, &cp)
	}
	for _, c := range seed.Contracts {
		cp := *c
		s.contracts = append(s.contracts, &cp)
	}
	for _, p := range seed.Payments {
		cp := *p
		s.payments = append(s.payments, &cp)
	}
	for _, it := range seed.Activity {
		cp := *it
		s.activity = append(s.activity, &cp)
	}

	return s
}

// --- deep copy helpers ---
// Reads hand out copies so callers never alias store internals.

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Address != nil {
		addr := *p.Address
		cp.Address = &addr
	}
	return &cp
}

func cloneTier(t *domain.SponsorshipTier) *domain.SponsorshipTier {
	cp := *t
	cp.Benefits = append([]string(nil), t.Benefits...)
	return &cp
}

func cloneDemographics(d *domain.EventDemographics) *domain.EventDemographics {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Interests = append([]string(nil), d.Interests...)
	cp.CustomTags = append([]string(nil), d.CustomTags...)
	return &cp
}

func cloneEvent(e *domain.Event) *domain.Event {
	cp := *e
	cp.SponsorshipTiers = make([]domain.SponsorshipTier, 0, len(e.SponsorshipTiers))
	for i := range e.SponsorshipTiers {
		cp.SponsorshipTiers = append(cp.SponsorshipTiers, *cloneTier(&e.SponsorshipTiers[i]))
	}
	cp.Demographics = cloneDemographics(e.Demographics)
	return &cp
}

func cloneSponsor(sp *domain.SponsorProfile) *domain.SponsorProfile {
	cp := *sp
	cp.TargetAudience = append([]string(nil), sp.TargetAudience...)
	cp.PreferredEventTypes = append([]string(nil), sp.PreferredEventTypes...)
	cp.AssetsAvailable = append([]string(nil), sp.AssetsAvailable...)
	cp.Profile = cloneProfile(sp.Profile)
	return &cp
}

func cloneApplication(a *domain.SponsorshipApplication) *domain.SponsorshipApplication {
	cp := *a
	if a.RespondedAt != nil {
		t := *a.RespondedAt
		cp.RespondedAt = &t
	}
	return &cp
}

func cloneActivity(it *domain.ActivityLogItem) *domain.ActivityLogItem {
	cp := *it
	if it.Metadata != nil {
		cp.Metadata = make(map[string]interface{}, len(it.Metadata))
		for k, v := range it.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}

// now is split out so tests can pin time if needed
var now = time.Now
