package service

import (
	"math"
	"math/rand"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// Jitter supplies the random component of match scoring, a value in [0, 1).
// It is injected so tests can pin the score.
type Jitter func() float64

// DefaultJitter is the production jitter source
var DefaultJitter Jitter = rand.Float64

// Scoring weights. The base plus every bonus can exceed the cap, so the
// final score is clamped.
const (
	scoreBase       = 70
	scoreVerified   = 10
	scoreAsset      = 5
	scoreBudgetHigh = 8
	scoreBudgetMid  = 5
	scoreMax        = 100
)

// matchScore computes the compatibility score for a sponsor. Scores are
// computed fresh on every read and never stored.
func matchScore(sp *domain.SponsorProfile, jitter Jitter) int {
	score := scoreBase
	if sp.IsVerified {
		score += scoreVerified
	}
	if hasAsset(sp, "preroll") {
		score += scoreAsset
	}
	if hasAsset(sp, "promo_codes") {
		score += scoreAsset
	}
	switch sp.BudgetTier {
	case domain.BudgetTierHigh:
		score += scoreBudgetHigh
	case domain.BudgetTierMid:
		score += scoreBudgetMid
	}
	score += int(math.Floor(jitter() * 10))
	if score > scoreMax {
		score = scoreMax
	}
	return score
}

func hasAsset(sp *domain.SponsorProfile, asset string) bool {
	for _, a := range sp.AssetsAvailable {
		if a == asset {
			return true
		}
	}
	return false
}

// placeholderDistance fakes a distance in km until geocoding lands,
// one decimal place in [0.5, 10.5)
func placeholderDistance(jitter Jitter) float64 {
	return math.Round((jitter()*10+0.5)*10) / 10
}

// enrichSponsor fills the per-read computed fields
func enrichSponsor(sp *domain.SponsorProfile, jitter Jitter) {
	sp.MatchScore = matchScore(sp, jitter)
	sp.DistanceKm = placeholderDistance(jitter)
}
