package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

func newSponsorRepo(t *testing.T) *MemorySponsorRepository {
	t.Helper()
	return NewMemorySponsorRepository(NewMemoryStore(DefaultSeed()))
}

func TestSaveSponsor_Idempotent(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	first, err := repo.SaveSponsor(ctx, "op-1", "sp-0001")
	require.NoError(t, err)

	second, err := repo.SaveSponsor(ctx, "op-1", "sp-0001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	saved, err := repo.ListSaved(ctx, "op-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestSaveSponsor_ScopedToOperator(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	_, err := repo.SaveSponsor(ctx, "op-1", "sp-0001")
	require.NoError(t, err)
	_, err = repo.SaveSponsor(ctx, "op-2", "sp-0001")
	require.NoError(t, err)
	_, err = repo.SaveSponsor(ctx, "op-2", "sp-0002")
	require.NoError(t, err)

	saved, err := repo.ListSaved(ctx, "op-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	saved, err = repo.ListSaved(ctx, "op-2")
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestUnsaveSponsor(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	_, err := repo.SaveSponsor(ctx, "op-1", "sp-0001")
	require.NoError(t, err)

	require.NoError(t, repo.UnsaveSponsor(ctx, "op-1", "sp-0001"))
	saved, err := repo.ListSaved(ctx, "op-1")
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Removing an absent bookmark is a no-op
	require.NoError(t, repo.UnsaveSponsor(ctx, "op-1", "sp-0001"))
}

func TestGetByProfileID(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	sp, err := repo.GetByProfileID(ctx, "22222222-2222-4222-8222-222222222222")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "sp-0001", sp.ID)

	sp, err = repo.GetByProfileID(ctx, "no-such-profile")
	require.NoError(t, err)
	assert.Nil(t, sp)
}

func TestListFiltered(t *testing.T) {
	repo := newSponsorRepo(t)

	tests := []struct {
		name    string
		filter  SponsorFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns everything",
			filter:  SponsorFilter{},
			wantIDs: []string{"sp-0001", "sp-0002", "sp-0003", "sp-0004"},
		},
		{
			name:    "query is case insensitive over company name",
			filter:  SponsorFilter{Query: "HARBOR"},
			wantIDs: []string{"sp-0001"},
		},
		{
			name:    "query matches business type",
			filter:  SponsorFilter{Query: "technology"},
			wantIDs: []string{"sp-0003"},
		},
		{
			name:    "business types union",
			filter:  SponsorFilter{BusinessTypes: []string{"fitness", "technology"}},
			wantIDs: []string{"sp-0002", "sp-0003"},
		},
		{
			name:    "budget tiers",
			filter:  SponsorFilter{BudgetTiers: []domain.BudgetTier{domain.BudgetTierLow}},
			wantIDs: []string{"sp-0004"},
		},
		{
			name:    "filters combine",
			filter:  SponsorFilter{Query: "coffee", BusinessTypes: []string{"food_beverage"}},
			wantIDs: []string{"sp-0001"},
		},
		{
			name:    "filters can exclude everything",
			filter:  SponsorFilter{Query: "coffee", BusinessTypes: []string{"fitness"}},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListFiltered(context.Background(), tt.filter)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, sp := range got {
				gotIDs = append(gotIDs, sp.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestListFiltered_ReturnsCopies(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	got, err := repo.ListFiltered(ctx, SponsorFilter{Query: "coffee"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got[0].Description = "mutated"

	again, err := repo.GetByID(ctx, "sp-0001")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Description)
}

func TestListBusinessTypes(t *testing.T) {
	repo := newSponsorRepo(t)

	types, err := repo.ListBusinessTypes(context.Background())
	require.NoError(t, err)
	// Distinct and sorted; food_beverage appears on two sponsors
	assert.Equal(t, []string{"fitness", "food_beverage", "technology"}, types)
}

func TestUpdateSponsor(t *testing.T) {
	repo := newSponsorRepo(t)
	ctx := context.Background()

	sp, err := repo.GetByID(ctx, "sp-0004")
	require.NoError(t, err)
	sp.BudgetTier = domain.BudgetTierMid
	sp.IsVerified = true

	require.NoError(t, repo.Update(ctx, sp))

	got, err := repo.GetByID(ctx, "sp-0004")
	require.NoError(t, err)
	assert.Equal(t, domain.BudgetTierMid, got.BudgetTier)
	assert.True(t, got.IsVerified)
}
