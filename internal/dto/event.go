package dto

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// CreateEventRequest represents request to create a new event
type CreateEventRequest struct {
	Title              string         `json:"title" binding:"required,min=2,max=255"`
	Description        string         `json:"description" binding:"omitempty,max=5000"`
	FilmTitle          string         `json:"film_title" binding:"omitempty,max=255"`
	EventDate          string         `json:"event_date" binding:"required,datetime=2006-01-02"`
	StartTime          string         `json:"start_time" binding:"omitempty"`
	EndTime            string         `json:"end_time" binding:"omitempty"`
	VenueName          string         `json:"venue_name" binding:"omitempty,max=255"`
	Address            domain.Address `json:"address" binding:"omitempty"`
	ExpectedAttendance int            `json:"expected_attendance" binding:"omitempty,min=0"`
	Status             string         `json:"status" binding:"omitempty,oneof=draft published"`
	CoverImageURL      string         `json:"cover_image_url" binding:"omitempty,url"`
}

// UpdateEventRequest represents request to update event fields.
// Nil fields are left unchanged.
type UpdateEventRequest struct {
	Title              *string         `json:"title" binding:"omitempty,min=2,max=255"`
	Description        *string         `json:"description" binding:"omitempty,max=5000"`
	FilmTitle          *string         `json:"film_title" binding:"omitempty,max=255"`
	EventDate          *string         `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime          *string         `json:"start_time" binding:"omitempty"`
	EndTime            *string         `json:"end_time" binding:"omitempty"`
	VenueName          *string         `json:"venue_name" binding:"omitempty,max=255"`
	Address            *domain.Address `json:"address" binding:"omitempty"`
	ExpectedAttendance *int            `json:"expected_attendance" binding:"omitempty,min=0"`
	Status             *string         `json:"status" binding:"omitempty,oneof=draft published completed canceled"`
	CoverImageURL      *string         `json:"cover_image_url" binding:"omitempty,url"`
}

// BrowseEventsQuery represents query parameters for public event browsing
type BrowseEventsQuery struct {
	Query         string   `form:"q" binding:"omitempty,max=255"`
	MinAttendance int      `form:"min_attendance" binding:"omitempty,min=0"`
	MaxAttendance int      `form:"max_attendance" binding:"omitempty,min=0"`
	DateFrom      string   `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo        string   `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Interests     []string `form:"interests" binding:"omitempty"`
	Page          int      `form:"page" binding:"omitempty,min=1"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// SetDefaults sets default values for query parameters
func (q *BrowseEventsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// BrowseEventsResponse represents a paginated page of browsable events
type BrowseEventsResponse struct {
	Events     []*domain.Event `json:"events"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// CreateTierRequest represents request to add a sponsorship tier to an event
type CreateTierRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	Price       int64    `json:"price" binding:"required,min=0"`
	Benefits    []string `json:"benefits" binding:"omitempty"`
	MaxSponsors int      `json:"max_sponsors" binding:"omitempty,min=0"`
}

// UpdateTierRequest represents request to update tier fields.
// Nil fields are left unchanged.
type UpdateTierRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Price       *int64    `json:"price" binding:"omitempty,min=0"`
	Benefits    *[]string `json:"benefits" binding:"omitempty"`
	MaxSponsors *int      `json:"max_sponsors" binding:"omitempty,min=0"`
	IsActive    *bool     `json:"is_active" binding:"omitempty"`
}

// UpdateDemographicsRequest represents the full demographics payload.
// The update is a complete overwrite; omitted fields take defaults.
type UpdateDemographicsRequest struct {
	AgeRangeMin *int     `json:"age_range_min" binding:"omitempty,min=0,max=120"`
	AgeRangeMax *int     `json:"age_range_max" binding:"omitempty,min=0,max=120"`
	Interests   []string `json:"interests" binding:"omitempty"`
	CustomTags  []string `json:"custom_tags" binding:"omitempty"`
}

// SubmitApplicationRequest represents request to apply for a sponsorship tier
type SubmitApplicationRequest struct {
	EventID string `json:"event_id" binding:"required"`
	TierID  string `json:"tier_id" binding:"required"`
	Message string `json:"message" binding:"omitempty,max=5000"`
}
