package domain

import "time"

// EventStatus constants
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCompleted = "completed"
	EventStatusCanceled  = "canceled"
)

// Event represents a screening event owned by exactly one operator
type Event struct {
	ID                 string    `json:"id"`
	OperatorID         string    `json:"operator_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	FilmTitle          string    `json:"film_title"`
	EventDate          string    `json:"event_date"` // YYYY-MM-DD
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	VenueName          string    `json:"venue_name"`
	Address            Address   `json:"address"`
	ExpectedAttendance int       `json:"expected_attendance"`
	Status             string    `json:"status"`
	CoverImageURL      string    `json:"cover_image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Joined data; SponsorshipTiers is always non-nil after load
	SponsorshipTiers []SponsorshipTier  `json:"sponsorship_tiers"`
	Demographics     *EventDemographics `json:"demographics,omitempty"`
}

// SponsorshipTier is a priced sponsorship package attached to an event.
// Price is stored in minor currency units (cents).
type SponsorshipTier struct {
	ID           string   `json:"id"`
	EventID      string   `json:"event_id"`
	Name         string   `json:"name"`
	Price        int64    `json:"price"`
	Benefits     []string `json:"benefits"`
	MaxSponsors  int      `json:"max_sponsors"`
	DisplayOrder int      `json:"display_order"`
	IsActive     bool     `json:"is_active"`
}

// EventDemographics describes the expected audience of an event.
// At most one record exists per event.
type EventDemographics struct {
	ID          string   `json:"id"`
	EventID     string   `json:"event_id"`
	AgeRangeMin int      `json:"age_range_min"`
	AgeRangeMax int      `json:"age_range_max"`
	Interests   []string `json:"interests"`
	CustomTags  []string `json:"custom_tags"`
}
