package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

func newEventRepo(t *testing.T) *MemoryEventRepository {
	t.Helper()
	return NewMemoryEventRepository(NewMemoryStore(DefaultSeed()))
}

func TestBrowse_ExcludesUnpublished(t *testing.T) {
	repo := newEventRepo(t)

	events, total, err := repo.Browse(context.Background(), BrowseEventsFilter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, e := range events {
		assert.Equal(t, domain.EventStatusPublished, e.Status)
	}
}

func TestBrowse_DateRange(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	// ev-0001 is one month out, ev-0002 two months out
	cutoff := time.Now().AddDate(0, 0, 45).Format("2006-01-02")

	_, total, err := repo.Browse(ctx, BrowseEventsFilter{DateTo: cutoff}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = repo.Browse(ctx, BrowseEventsFilter{DateFrom: cutoff}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestBrowse_Pagination(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	page, total, err := repo.Browse(ctx, BrowseEventsFilter{}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, page, 1)

	// Offset past the end keeps the total but yields an empty page
	page, total, err = repo.Browse(ctx, BrowseEventsFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Empty(t, page)
}

func TestGetByID_AttachesChildren(t *testing.T) {
	repo := newEventRepo(t)

	event, err := repo.GetByID(context.Background(), "ev-0001")
	require.NoError(t, err)
	require.NotNil(t, event)

	require.Len(t, event.SponsorshipTiers, 2)
	assert.Equal(t, 1, event.SponsorshipTiers[0].DisplayOrder)
	assert.Equal(t, 2, event.SponsorshipTiers[1].DisplayOrder)
	require.NotNil(t, event.Demographics)
	assert.Equal(t, []string{"film", "outdoors"}, event.Demographics.Interests)

	missing, err := repo.GetByID(context.Background(), "no-such-event")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdate_DoesNotTouchChildren(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	event, err := repo.GetByID(ctx, "ev-0001")
	require.NoError(t, err)
	event.Title = "Renamed"
	event.SponsorshipTiers = nil
	event.Demographics = nil

	require.NoError(t, repo.Update(ctx, event))

	got, err := repo.GetByID(ctx, "ev-0001")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Len(t, got.SponsorshipTiers, 2)
	assert.NotNil(t, got.Demographics)
}

func TestMaxTierDisplayOrder(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	max, err := repo.MaxTierDisplayOrder(ctx, "ev-0001")
	require.NoError(t, err)
	assert.Equal(t, 2, max)

	// No tiers yet
	max, err = repo.MaxTierDisplayOrder(ctx, "ev-0003")
	require.NoError(t, err)
	assert.Equal(t, 0, max)
}

func TestCreateAndDeleteTier(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	tier := &domain.SponsorshipTier{
		ID:           "tier-new",
		EventID:      "ev-0003",
		Name:         "Gala Sponsor",
		Price:        100000,
		DisplayOrder: 1,
		IsActive:     true,
	}
	require.NoError(t, repo.CreateTier(ctx, tier))

	got, err := repo.GetTierByID(ctx, "tier-new")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ev-0003", got.EventID)

	require.NoError(t, repo.DeleteTier(ctx, "tier-new"))
	got, err = repo.GetTierByID(ctx, "tier-new")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDemographicsUpsert(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	d, err := repo.GetDemographics(ctx, "ev-0002")
	require.NoError(t, err)
	assert.Nil(t, d)

	require.NoError(t, repo.CreateDemographics(ctx, &domain.EventDemographics{
		ID:          "demo-new",
		EventID:     "ev-0002",
		AgeRangeMin: 18,
		AgeRangeMax: 35,
		Interests:   []string{"film"},
	}))

	d, err = repo.GetDemographics(ctx, "ev-0002")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 18, d.AgeRangeMin)

	// Update replaces the record wholesale
	require.NoError(t, repo.UpdateDemographics(ctx, &domain.EventDemographics{
		ID:      "demo-new",
		EventID: "ev-0002",
	}))
	d, err = repo.GetDemographics(ctx, "ev-0002")
	require.NoError(t, err)
	assert.Equal(t, 0, d.AgeRangeMin)
	assert.Empty(t, d.Interests)
}

func TestDeleteEvent_RemovesChildren(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "ev-0001"))

	event, err := repo.GetByID(ctx, "ev-0001")
	require.NoError(t, err)
	assert.Nil(t, event)

	tier, err := repo.GetTierByID(ctx, "tier-0001")
	require.NoError(t, err)
	assert.Nil(t, tier)
}
