package dto

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// SearchSponsorsQuery represents query parameters for sponsor search
type SearchSponsorsQuery struct {
	Query         string   `form:"q" binding:"omitempty,max=255"`
	BusinessTypes []string `form:"business_types" binding:"omitempty"`
	BudgetTiers   []string `form:"budget_tiers" binding:"omitempty,dive,oneof=low mid high"`
	MinMatchScore int      `form:"min_match_score" binding:"omitempty,min=0,max=100"`
	Page          int      `form:"page" binding:"omitempty,min=1"`
	PageSize      int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SetDefaults sets default values for query parameters
func (q *SearchSponsorsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 20
	}
}

// SearchSponsorsResponse represents a paginated sponsor search result.
// The database-backed search counts storage matches before scoring, so
// score filtering can shorten a page without shrinking the total.
type SearchSponsorsResponse struct {
	Data     []*domain.SponsorProfile `json:"data"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// UpdateSponsorProfileRequest represents request to update sponsor profile
// fields. Nil fields are left unchanged.
type UpdateSponsorProfileRequest struct {
	BusinessType        *string   `json:"business_type" binding:"omitempty,max=255"`
	Description         *string   `json:"description" binding:"omitempty,max=5000"`
	TargetAudience      *[]string `json:"target_audience" binding:"omitempty"`
	BudgetTier          *string   `json:"budget_tier" binding:"omitempty,oneof=low mid high"`
	BudgetMin           *int64    `json:"budget_min" binding:"omitempty,min=0"`
	BudgetMax           *int64    `json:"budget_max" binding:"omitempty,min=0"`
	PreferredEventTypes *[]string `json:"preferred_event_types" binding:"omitempty"`
	AssetsAvailable     *[]string `json:"assets_available" binding:"omitempty"`
	CoverImageURL       *string   `json:"cover_image_url" binding:"omitempty,url"`
	MediaKitURL         *string   `json:"media_kit_url" binding:"omitempty,url"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateSponsorProfileRequest) Validate() (bool, string) {
	if r.BusinessType == nil && r.Description == nil && r.TargetAudience == nil &&
		r.BudgetTier == nil && r.BudgetMin == nil && r.BudgetMax == nil &&
		r.PreferredEventTypes == nil && r.AssetsAvailable == nil &&
		r.CoverImageURL == nil && r.MediaKitURL == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SaveSponsorRequest represents request to bookmark a sponsor
type SaveSponsorRequest struct {
	SponsorID string `json:"sponsor_id" binding:"required"`
}
