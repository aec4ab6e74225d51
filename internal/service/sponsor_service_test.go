package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
)

// newSponsorService builds the fixture-backed service with the jitter pinned
// to zero so scores are deterministic:
//
//	sp-0001  mid, verified, preroll   -> 90
//	sp-0002  high, verified, preroll, promo_codes -> 98
//	sp-0003  high, unverified, promo_codes -> 83
//	sp-0004  low, unverified -> 70
func newSponsorService(t *testing.T) SponsorService {
	t.Helper()
	repo := repository.NewMemorySponsorRepository(repository.NewMemoryStore(repository.DefaultSeed()))
	return NewMemorySponsorService(repo, func() float64 { return 0 })
}

func TestSearchSponsors_SortedByScoreDesc(t *testing.T) {
	svc := newSponsorService(t)

	result, err := svc.SearchSponsors(context.Background(), &dto.SearchSponsorsQuery{})
	require.NoError(t, err)

	require.Len(t, result.Data, 4)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "sp-0002", result.Data[0].ID)
	assert.Equal(t, 98, result.Data[0].MatchScore)
	assert.Equal(t, "sp-0001", result.Data[1].ID)
	assert.Equal(t, 90, result.Data[1].MatchScore)
	assert.Equal(t, "sp-0004", result.Data[3].ID)
	assert.Equal(t, 70, result.Data[3].MatchScore)
}

func TestSearchSponsors_MinScoreFilterShrinksTotal(t *testing.T) {
	svc := newSponsorService(t)

	// The fixture backend filters on score before counting, so the total
	// reflects only sponsors that cleared the threshold
	result, err := svc.SearchSponsors(context.Background(), &dto.SearchSponsorsQuery{MinMatchScore: 85})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "sp-0002", result.Data[0].ID)
	assert.Equal(t, "sp-0001", result.Data[1].ID)
}

func TestSearchSponsors_Pagination(t *testing.T) {
	svc := newSponsorService(t)

	result, err := svc.SearchSponsors(context.Background(), &dto.SearchSponsorsQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Page)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "sp-0003", result.Data[0].ID)
	assert.Equal(t, "sp-0004", result.Data[1].ID)

	// A page past the end is empty, not an error
	result, err = svc.SearchSponsors(context.Background(), &dto.SearchSponsorsQuery{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Empty(t, result.Data)
}

func TestSearchSponsors_StorageFilters(t *testing.T) {
	svc := newSponsorService(t)

	tests := []struct {
		name      string
		query     dto.SearchSponsorsQuery
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "query matches company name",
			query:     dto.SearchSponsorsQuery{Query: "coffee"},
			wantIDs:   []string{"sp-0001"},
			wantTotal: 1,
		},
		{
			name:      "query matches description",
			query:     dto.SearchSponsorsQuery{Query: "brewery"},
			wantIDs:   []string{"sp-0004"},
			wantTotal: 1,
		},
		{
			name:      "business type filter",
			query:     dto.SearchSponsorsQuery{BusinessTypes: []string{"food_beverage"}},
			wantIDs:   []string{"sp-0001", "sp-0004"},
			wantTotal: 2,
		},
		{
			name:      "budget tier filter",
			query:     dto.SearchSponsorsQuery{BudgetTiers: []string{"high"}},
			wantIDs:   []string{"sp-0002", "sp-0003"},
			wantTotal: 2,
		},
		{
			name:      "no matches",
			query:     dto.SearchSponsorsQuery{Query: "no such sponsor"},
			wantIDs:   []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SearchSponsors(context.Background(), &tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)

			gotIDs := make([]string, 0, len(result.Data))
			for _, sp := range result.Data {
				gotIDs = append(gotIDs, sp.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestGetSponsor(t *testing.T) {
	svc := newSponsorService(t)

	sp, err := svc.GetSponsor(context.Background(), "sp-0001")
	require.NoError(t, err)
	assert.Equal(t, 90, sp.MatchScore)
	require.NotNil(t, sp.Profile)
	assert.Equal(t, "Harbor Coffee Roasters", sp.Profile.CompanyName)

	_, err = svc.GetSponsor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSponsorNotFound)
}

func TestSaveSponsor_UnknownSponsor(t *testing.T) {
	svc := newSponsorService(t)

	_, err := svc.SaveSponsor(context.Background(), "op-1", "missing")
	assert.ErrorIs(t, err, ErrSponsorNotFound)
}

func TestSaveAndListSavedSponsors(t *testing.T) {
	svc := newSponsorService(t)
	ctx := context.Background()

	_, err := svc.SaveSponsor(ctx, "op-1", "sp-0002")
	require.NoError(t, err)
	_, err = svc.SaveSponsor(ctx, "op-1", "sp-0004")
	require.NoError(t, err)

	saved, err := svc.GetSavedSponsors(ctx, "op-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Bookmarks are scored on read like search results
	for _, sp := range saved {
		assert.GreaterOrEqual(t, sp.MatchScore, 70)
	}

	require.NoError(t, svc.UnsaveSponsor(ctx, "op-1", "sp-0002"))
	saved, err = svc.GetSavedSponsors(ctx, "op-1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "sp-0004", saved[0].ID)
}

func TestUpdateSponsorProfile(t *testing.T) {
	svc := newSponsorService(t)
	ctx := context.Background()

	desc := "Updated description"
	tier := "low"
	sp, err := svc.UpdateSponsorProfile(ctx, "sp-0001", &dto.UpdateSponsorProfileRequest{
		Description: &desc,
		BudgetTier:  &tier,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated description", sp.Description)

	// Dropping to the low tier loses the mid bonus: 70+10+5 preroll = 85
	got, err := svc.GetSponsor(ctx, "sp-0001")
	require.NoError(t, err)
	assert.Equal(t, "Updated description", got.Description)
	assert.Equal(t, 85, got.MatchScore)
}

func TestGetBusinessTypes(t *testing.T) {
	svc := newSponsorService(t)

	types, err := svc.GetBusinessTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fitness", "food_beverage", "technology"}, types)
}
