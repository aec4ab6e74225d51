package dto

import (
	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// DashboardStats represents the operator dashboard headline numbers.
// Revenue values are in major currency units (dollars).
type DashboardStats struct {
	TotalRevenue       float64 `json:"total_revenue"`
	RevenueChangePct   float64 `json:"revenue_change_pct"`
	ActiveEvents       int     `json:"active_events"`
	ActiveEventsChange int     `json:"active_events_change"`
	PendingApps        int     `json:"pending_apps"`
	PendingAppsChange  int     `json:"pending_apps_change"`
}

// RevenueMonth is one monthly revenue bucket, in major currency units
type RevenueMonth struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// RevenueDataQuery represents query parameters for the revenue chart
type RevenueDataQuery struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
}

// SetDefaults sets default values for query parameters
func (q *RevenueDataQuery) SetDefaults() {
	if q.Months == 0 {
		q.Months = 6
	}
}

// ActivityLogQuery represents query parameters for the activity feed
type ActivityLogQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// SetDefaults sets default values for query parameters
func (q *ActivityLogQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ActivityLogResponse represents the activity feed
type ActivityLogResponse struct {
	Items []*domain.ActivityLogItem `json:"items"`
}
