package service

import (
	"context"
	"time"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
)

// DashboardService aggregates the operator dashboard numbers
type DashboardService interface {
	// GetStats returns the headline stats with deltas against historical
	// snapshots
	GetStats(ctx context.Context, operatorID string) (*dto.DashboardStats, error)
	// GetRevenueData returns monthly revenue buckets for the last n months
	GetRevenueData(ctx context.Context, operatorID string, months int) ([]dto.RevenueMonth, error)
	// GetActivityLog returns the operator's recent activity
	GetActivityLog(ctx context.Context, operatorID string, limit int) ([]*domain.ActivityLogItem, error)
}

// dashboardService implements the DashboardService interface
type dashboardService struct {
	dashRepo     repository.DashboardRepository
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashRepo repository.DashboardRepository, activityRepo repository.ActivityRepository) DashboardService {
	return &dashboardService{
		dashRepo:     dashRepo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// centsToDollars converts minor units to major units. This is the single
// place monetary values cross into dollars.
func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

// GetStats computes year-to-date revenue against the same window last year,
// the published future event count against a 30-day-old snapshot, and the
// pending application count against a 7-day-old snapshot
func (s *dashboardService) GetStats(ctx context.Context, operatorID string) (*dto.DashboardStats, error) {
	now := s.now()

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	ytdCents, err := s.dashRepo.SumCompletedPayments(ctx, operatorID, yearStart, now)
	if err != nil {
		return nil, err
	}

	prevYearStart := yearStart.AddDate(-1, 0, 0)
	prevCents, err := s.dashRepo.SumCompletedPayments(ctx, operatorID, prevYearStart, now.AddDate(-1, 0, 0))
	if err != nil {
		return nil, err
	}

	revenueChangePct := 0.0
	if prevCents > 0 {
		revenueChangePct = float64(ytdCents-prevCents) / float64(prevCents) * 100
	}

	today := now.Format("2006-01-02")
	activeEvents, err := s.dashRepo.CountPublishedFutureEvents(ctx, operatorID, today, nil)
	if err != nil {
		return nil, err
	}
	monthAgo := now.AddDate(0, 0, -30)
	activeSnapshot, err := s.dashRepo.CountPublishedFutureEvents(ctx, operatorID, today, &monthAgo)
	if err != nil {
		return nil, err
	}

	pendingApps, err := s.dashRepo.CountPendingApplications(ctx, operatorID, nil)
	if err != nil {
		return nil, err
	}
	weekAgo := now.AddDate(0, 0, -7)
	pendingSnapshot, err := s.dashRepo.CountPendingApplications(ctx, operatorID, &weekAgo)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalRevenue:       centsToDollars(ytdCents),
		RevenueChangePct:   revenueChangePct,
		ActiveEvents:       activeEvents,
		ActiveEventsChange: activeEvents - activeSnapshot,
		PendingApps:        pendingApps,
		PendingAppsChange:  pendingApps - pendingSnapshot,
	}, nil
}

// GetRevenueData buckets completed payments by calendar month, oldest first
func (s *dashboardService) GetRevenueData(ctx context.Context, operatorID string, months int) ([]dto.RevenueMonth, error) {
	if months <= 0 {
		months = 6
	}
	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	payments, err := s.dashRepo.ListCompletedPayments(ctx, operatorID, start)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, months)
	for _, p := range payments {
		if p.CreatedAt.Before(start) {
			continue
		}
		key := p.CreatedAt.Format("2006-01")
		totals[key] += p.Amount
	}

	buckets := make([]dto.RevenueMonth, 0, months)
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0)
		buckets = append(buckets, dto.RevenueMonth{
			Month:   month.Format("Jan"),
			Revenue: centsToDollars(totals[month.Format("2006-01")]),
		})
	}
	return buckets, nil
}

// GetActivityLog returns the operator's recent activity, newest first
func (s *dashboardService) GetActivityLog(ctx context.Context, operatorID string, limit int) ([]*domain.ActivityLogItem, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.activityRepo.ListByUser(ctx, operatorID, limit)
}
