package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/pkg/activity"
)

const seedOperatorID = "11111111-1111-4111-8111-111111111111"

func newEventService(t *testing.T) (EventService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore(repository.DefaultSeed())
	svc := NewEventService(
		repository.NewMemoryEventRepository(store),
		repository.NewMemoryApplicationRepository(store),
		repository.NewMemoryActivityRepository(store),
		activity.NopPublisher{},
	)
	return svc, store
}

func TestCreateEvent_DefaultsToDraft(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(context.Background(), seedOperatorID, &dto.CreateEventRequest{
		Title:     "Rooftop Premiere",
		EventDate: "2026-10-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
	assert.NotEmpty(t, event.ID)
	assert.NotNil(t, event.SponsorshipTiers)

	got, err := svc.GetEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rooftop Premiere", got.Title)
}

func TestGetEvents_OneEntryPerEvent(t *testing.T) {
	svc, _ := newEventService(t)

	events, err := svc.GetEvents(context.Background(), seedOperatorID)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Multiple tiers must not multiply the event rows
	seen := make(map[string]bool)
	for _, e := range events {
		assert.False(t, seen[e.ID], "event %s listed twice", e.ID)
		seen[e.ID] = true
	}
	assert.True(t, seen["ev-0001"])
}

func TestUpdateEvent_OwnershipEnforced(t *testing.T) {
	svc, _ := newEventService(t)
	title := "Renamed"

	_, err := svc.UpdateEvent(context.Background(), "someone-else", "ev-0001", &dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotEventOwner)

	_, err = svc.UpdateEvent(context.Background(), seedOperatorID, "missing", &dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrEventNotFound)

	event, err := svc.UpdateEvent(context.Background(), seedOperatorID, "ev-0001", &dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", event.Title)
}

func TestUpdateEvent_PreservesChildren(t *testing.T) {
	svc, _ := newEventService(t)
	title := "Renamed"

	_, err := svc.UpdateEvent(context.Background(), seedOperatorID, "ev-0001", &dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)

	event, err := svc.GetEvent(context.Background(), "ev-0001")
	require.NoError(t, err)
	assert.Len(t, event.SponsorshipTiers, 2)
	require.NotNil(t, event.Demographics)
	assert.Equal(t, "demo-0001", event.Demographics.ID)
}

func TestAddSponsorshipTier_DisplayOrder(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	// ev-0001 already has tiers at display orders 1 and 2
	tier, err := svc.AddSponsorshipTier(ctx, seedOperatorID, "ev-0001", &dto.CreateTierRequest{
		Name:  "Supporting Sponsor",
		Price: 25000,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tier.DisplayOrder)
	assert.True(t, tier.IsActive)
	assert.NotNil(t, tier.Benefits)

	// ev-0003 has no tiers, so the first one lands at 1
	tier, err = svc.AddSponsorshipTier(ctx, seedOperatorID, "ev-0003", &dto.CreateTierRequest{
		Name:  "Gala Sponsor",
		Price: 100000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tier.DisplayOrder)
}

func TestUpdateSponsorshipTier(t *testing.T) {
	svc, _ := newEventService(t)
	price := int64(200000)

	tier, err := svc.UpdateSponsorshipTier(context.Background(), seedOperatorID, "tier-0001", &dto.UpdateTierRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(200000), tier.Price)
	assert.Equal(t, "Headline Sponsor", tier.Name)

	_, err = svc.UpdateSponsorshipTier(context.Background(), seedOperatorID, "missing", &dto.UpdateTierRequest{Price: &price})
	assert.ErrorIs(t, err, ErrTierNotFound)

	_, err = svc.UpdateSponsorshipTier(context.Background(), "someone-else", "tier-0001", &dto.UpdateTierRequest{Price: &price})
	assert.ErrorIs(t, err, ErrNotEventOwner)
}

func TestDeleteSponsorshipTier(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteSponsorshipTier(ctx, seedOperatorID, "tier-0002"))

	event, err := svc.GetEvent(ctx, "ev-0001")
	require.NoError(t, err)
	require.Len(t, event.SponsorshipTiers, 1)
	assert.Equal(t, "tier-0001", event.SponsorshipTiers[0].ID)
}

func TestUpdateEventDemographics_OverwritesNotMerges(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	// ev-0001 starts with ages 21-55, interests [film outdoors], tag [waterfront].
	// Sending only a minimum age resets everything else to defaults.
	ageMin := 30
	d, err := svc.UpdateEventDemographics(ctx, seedOperatorID, "ev-0001", &dto.UpdateDemographicsRequest{
		AgeRangeMin: &ageMin,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, d.AgeRangeMin)
	assert.Equal(t, 100, d.AgeRangeMax)
	assert.Empty(t, d.Interests)
	assert.Empty(t, d.CustomTags)
	assert.Equal(t, "demo-0001", d.ID, "existing record keeps its id")

	event, err := svc.GetEvent(ctx, "ev-0001")
	require.NoError(t, err)
	require.NotNil(t, event.Demographics)
	assert.Equal(t, 30, event.Demographics.AgeRangeMin)
	assert.Empty(t, event.Demographics.Interests)
}

func TestUpdateEventDemographics_CreatesWhenAbsent(t *testing.T) {
	svc, _ := newEventService(t)

	d, err := svc.UpdateEventDemographics(context.Background(), seedOperatorID, "ev-0002", &dto.UpdateDemographicsRequest{
		Interests: []string{"film"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, 0, d.AgeRangeMin)
	assert.Equal(t, 100, d.AgeRangeMax)
	assert.Equal(t, []string{"film"}, d.Interests)
}

func TestBrowseEvents_OnlyPublished(t *testing.T) {
	svc, _ := newEventService(t)

	result, err := svc.BrowseEvents(context.Background(), &dto.BrowseEventsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	for _, e := range result.Events {
		assert.Equal(t, domain.EventStatusPublished, e.Status)
	}
}

func TestBrowseEvents_Filters(t *testing.T) {
	svc, _ := newEventService(t)

	tests := []struct {
		name    string
		query   dto.BrowseEventsQuery
		wantIDs []string
	}{
		{
			name:    "query matches title",
			query:   dto.BrowseEventsQuery{Query: "shorts"},
			wantIDs: []string{"ev-0002"},
		},
		{
			name:    "query matches film title",
			query:   dto.BrowseEventsQuery{Query: "casablanca"},
			wantIDs: []string{"ev-0001"},
		},
		{
			name:    "attendance range",
			query:   dto.BrowseEventsQuery{MinAttendance: 200},
			wantIDs: []string{"ev-0001"},
		},
		{
			name:    "attendance upper bound",
			query:   dto.BrowseEventsQuery{MaxAttendance: 200},
			wantIDs: []string{"ev-0002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.BrowseEvents(context.Background(), &tt.query)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(result.Events))
			for _, e := range result.Events {
				gotIDs = append(gotIDs, e.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestBrowseEvents_InterestFilterKeepsTotal(t *testing.T) {
	svc, _ := newEventService(t)

	// Only ev-0001 has demographics tagged "film"; ev-0002 has none at all.
	// The interest filter trims the page but the total still counts both
	// published events.
	result, err := svc.BrowseEvents(context.Background(), &dto.BrowseEventsQuery{Interests: []string{"film"}})
	require.NoError(t, err)

	require.Len(t, result.Events, 1)
	assert.Equal(t, "ev-0001", result.Events[0].ID)
	assert.Equal(t, 2, result.TotalCount)
}

func TestSubmitApplication(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	app, err := svc.SubmitApplication(ctx, "sp-0003", &dto.SubmitApplicationRequest{
		EventID: "ev-0001",
		TierID:  "tier-0001",
		Message: "Interested in the headline slot.",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, "sp-0003", app.SponsorID)
	assert.WithinDuration(t, time.Now(), app.SubmittedAt, time.Minute)

	apps, err := svc.GetApplicationsBySponsor(ctx, "sp-0003")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
}

func TestSubmitApplication_TierMustBelongToEvent(t *testing.T) {
	svc, _ := newEventService(t)

	// tier-0003 belongs to ev-0002, not ev-0001
	_, err := svc.SubmitApplication(context.Background(), "sp-0003", &dto.SubmitApplicationRequest{
		EventID: "ev-0001",
		TierID:  "tier-0003",
	})
	assert.ErrorIs(t, err, ErrTierNotFound)

	_, err = svc.SubmitApplication(context.Background(), "sp-0003", &dto.SubmitApplicationRequest{
		EventID: "missing",
		TierID:  "tier-0001",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestWithdrawApplication(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	// app-0001 is pending and owned by sp-0001
	app, err := svc.WithdrawApplication(ctx, "sp-0001", "app-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusWithdrawn, app.Status)

	// Already withdrawn, no longer pending
	_, err = svc.WithdrawApplication(ctx, "sp-0001", "app-0001")
	assert.ErrorIs(t, err, ErrApplicationNotPending)
}

func TestWithdrawApplication_Guards(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	// app-0002 is accepted
	_, err := svc.WithdrawApplication(ctx, "sp-0002", "app-0002")
	assert.ErrorIs(t, err, ErrApplicationNotPending)

	// Another sponsor's application looks like it does not exist
	_, err = svc.WithdrawApplication(ctx, "sp-0002", "app-0001")
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	_, err = svc.WithdrawApplication(ctx, "sp-0001", "missing")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestDeleteEvent(t *testing.T) {
	svc, _ := newEventService(t)
	ctx := context.Background()

	require.ErrorIs(t, svc.DeleteEvent(ctx, "someone-else", "ev-0001"), ErrNotEventOwner)
	require.NoError(t, svc.DeleteEvent(ctx, seedOperatorID, "ev-0001"))

	_, err := svc.GetEvent(ctx, "ev-0001")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
