package domain

import "time"

// UserType identifies the account role
type UserType string

const (
	UserTypeOperator UserType = "operator"
	UserTypeSponsor  UserType = "sponsor"
	UserTypeAdmin    UserType = "admin"
)

// Subscription status constants
const (
	SubscriptionStatusTrial    = "trial"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusPastDue  = "past_due"
)

// Subscription tier constants
const (
	SubscriptionTierFree = "free"
	SubscriptionTierPro  = "pro"
)

// Address represents a postal address with optional coordinates
type Address struct {
	Street string   `json:"street"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Zip    string   `json:"zip"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

// Profile represents an authenticated account identity.
// One profile exists per identity; profiles are never deleted in-app.
type Profile struct {
	ID                 string    `json:"id"`
	UserType           UserType  `json:"user_type"`
	Email              string    `json:"email"`
	CompanyName        string    `json:"company_name"`
	CompanyLogoURL     string    `json:"company_logo_url,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Address            *Address  `json:"address,omitempty"`
	StripeCustomerID   string    `json:"stripe_customer_id,omitempty"`
	SubscriptionStatus string    `json:"subscription_status"`
	SubscriptionTier   string    `json:"subscription_tier"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BudgetTier buckets a sponsor's spending capacity
type BudgetTier string

const (
	BudgetTierLow  BudgetTier = "low"
	BudgetTierMid  BudgetTier = "mid"
	BudgetTierHigh BudgetTier = "high"
)

// SponsorProfile is the one-to-one extension of a Profile with role=sponsor.
// Targeting metadata is used only for match scoring, never for authorization.
type SponsorProfile struct {
	ID                  string     `json:"id"`
	ProfileID           string     `json:"profile_id"`
	BusinessType        string     `json:"business_type"`
	Description         string     `json:"description"`
	TargetAudience      []string   `json:"target_audience"`
	BudgetTier          BudgetTier `json:"budget_tier"`
	BudgetMin           int64      `json:"budget_min"` // cents
	BudgetMax           int64      `json:"budget_max"` // cents
	PreferredEventTypes []string   `json:"preferred_event_types"`
	AssetsAvailable     []string   `json:"assets_available"`
	CoverImageURL       string     `json:"cover_image_url,omitempty"`
	IsVerified          bool       `json:"is_verified"`
	MediaKitURL         string     `json:"media_kit_url,omitempty"`

	// Joined data
	Profile *Profile `json:"profile,omitempty"`

	// Computed per read, never stored
	MatchScore int     `json:"match_score,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// SavedSponsor is a bookmark edge between an operator and a sponsor.
// The (operator_id, sponsor_id) pair is unique; saving twice is idempotent.
type SavedSponsor struct {
	ID         string    `json:"id"`
	OperatorID string    `json:"operator_id"`
	SponsorID  string    `json:"sponsor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthSession is the serialized session persisted on the client side
type AuthSession struct {
	User      *Profile  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionTTL is the fixed bearer token lifetime computed at issuance
const SessionTTL = 7 * 24 * time.Hour
