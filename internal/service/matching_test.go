package service

import (
	"testing"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

func fixedJitter(v float64) Jitter {
	return func() float64 { return v }
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		sponsor  *domain.SponsorProfile
		jitter   float64
		expected int
	}{
		{
			name:     "base score only",
			sponsor:  &domain.SponsorProfile{BudgetTier: domain.BudgetTierLow},
			jitter:   0,
			expected: 70,
		},
		{
			name:     "verified bonus",
			sponsor:  &domain.SponsorProfile{IsVerified: true, BudgetTier: domain.BudgetTierLow},
			jitter:   0,
			expected: 80,
		},
		{
			name: "preroll and promo_codes each add five",
			sponsor: &domain.SponsorProfile{
				BudgetTier:      domain.BudgetTierLow,
				AssetsAvailable: []string{"preroll", "promo_codes"},
			},
			jitter:   0,
			expected: 80,
		},
		{
			name:     "unrecognized assets add nothing",
			sponsor:  &domain.SponsorProfile{BudgetTier: domain.BudgetTierLow, AssetsAvailable: []string{"sampling", "booth"}},
			jitter:   0,
			expected: 70,
		},
		{
			name:     "mid budget tier",
			sponsor:  &domain.SponsorProfile{BudgetTier: domain.BudgetTierMid},
			jitter:   0,
			expected: 75,
		},
		{
			name:     "high budget tier",
			sponsor:  &domain.SponsorProfile{BudgetTier: domain.BudgetTierHigh},
			jitter:   0,
			expected: 78,
		},
		{
			name: "all bonuses without jitter",
			sponsor: &domain.SponsorProfile{
				IsVerified:      true,
				BudgetTier:      domain.BudgetTierHigh,
				AssetsAvailable: []string{"preroll", "promo_codes"},
			},
			jitter:   0,
			expected: 98,
		},
		{
			name: "all bonuses with max jitter are capped",
			sponsor: &domain.SponsorProfile{
				IsVerified:      true,
				BudgetTier:      domain.BudgetTierHigh,
				AssetsAvailable: []string{"preroll", "promo_codes"},
			},
			jitter:   0.999,
			expected: 100,
		},
		{
			name:     "jitter floors to whole points",
			sponsor:  &domain.SponsorProfile{BudgetTier: domain.BudgetTierLow},
			jitter:   0.39,
			expected: 73,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchScore(tt.sponsor, fixedJitter(tt.jitter)); got != tt.expected {
				t.Errorf("matchScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestMatchScoreBounds(t *testing.T) {
	sponsors := []*domain.SponsorProfile{
		{},
		{IsVerified: true, BudgetTier: domain.BudgetTierHigh, AssetsAvailable: []string{"preroll", "promo_codes"}},
	}
	jitters := []float64{0, 0.25, 0.5, 0.9999}

	for _, sp := range sponsors {
		for _, j := range jitters {
			score := matchScore(sp, fixedJitter(j))
			if score < 70 || score > 100 {
				t.Errorf("matchScore() = %d, want within [70, 100]", score)
			}
		}
	}
}

func TestPlaceholderDistance(t *testing.T) {
	tests := []struct {
		name     string
		jitter   float64
		expected float64
	}{
		{"minimum", 0, 0.5},
		{"midpoint", 0.5, 5.5},
		{"rounds to one decimal", 0.333, 3.8},
		{"near maximum", 0.999, 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeholderDistance(fixedJitter(tt.jitter)); got != tt.expected {
				t.Errorf("placeholderDistance() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEnrichSponsor(t *testing.T) {
	sp := &domain.SponsorProfile{IsVerified: true, BudgetTier: domain.BudgetTierMid}
	enrichSponsor(sp, fixedJitter(0))

	if sp.MatchScore != 85 {
		t.Errorf("MatchScore = %d, want 85", sp.MatchScore)
	}
	if sp.DistanceKm != 0.5 {
		t.Errorf("DistanceKm = %v, want 0.5", sp.DistanceKm)
	}
}
