package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
)

// fakeDashboardRepo serves canned aggregates and records the query windows
// it was asked for
type fakeDashboardRepo struct {
	sumByYear    map[int]int64
	payments     []*domain.Payment
	eventsNow    int
	eventsThen   int
	pendingNow   int
	pendingThen  int
	sumWindows   [][2]time.Time
	paymentsFrom time.Time
}

func (f *fakeDashboardRepo) SumCompletedPayments(ctx context.Context, operatorID string, from, to time.Time) (int64, error) {
	f.sumWindows = append(f.sumWindows, [2]time.Time{from, to})
	return f.sumByYear[from.Year()], nil
}

func (f *fakeDashboardRepo) ListCompletedPayments(ctx context.Context, operatorID string, from time.Time) ([]*domain.Payment, error) {
	f.paymentsFrom = from
	return f.payments, nil
}

func (f *fakeDashboardRepo) CountPublishedFutureEvents(ctx context.Context, operatorID, today string, createdBefore *time.Time) (int, error) {
	if createdBefore != nil {
		return f.eventsThen, nil
	}
	return f.eventsNow, nil
}

func (f *fakeDashboardRepo) CountPendingApplications(ctx context.Context, operatorID string, submittedBefore *time.Time) (int, error) {
	if submittedBefore != nil {
		return f.pendingThen, nil
	}
	return f.pendingNow, nil
}

func newDashboardService(repo repository.DashboardRepository, activityRepo repository.ActivityRepository, now time.Time) *dashboardService {
	return &dashboardService{
		dashRepo:     repo,
		activityRepo: activityRepo,
		now:          func() time.Time { return now },
	}
}

func TestGetStats(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		sumByYear:   map[int]int64{2026: 150000, 2025: 60000},
		eventsNow:   3,
		eventsThen:  2,
		pendingNow:  5,
		pendingThen: 4,
	}
	svc := newDashboardService(repo, nil, now)

	stats, err := svc.GetStats(context.Background(), "op-1")
	require.NoError(t, err)

	assert.Equal(t, 1500.0, stats.TotalRevenue)
	assert.InDelta(t, 150.0, stats.RevenueChangePct, 0.001)
	assert.Equal(t, 3, stats.ActiveEvents)
	assert.Equal(t, 1, stats.ActiveEventsChange)
	assert.Equal(t, 5, stats.PendingApps)
	assert.Equal(t, 1, stats.PendingAppsChange)

	// Year to date runs [Jan 1, now); last year is the same window shifted
	// back exactly one year
	require.Len(t, repo.sumWindows, 2)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), repo.sumWindows[0][0])
	assert.Equal(t, now, repo.sumWindows[0][1])
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), repo.sumWindows[1][0])
	assert.Equal(t, now.AddDate(-1, 0, 0), repo.sumWindows[1][1])
}

func TestGetStats_ZeroPriorYearRevenue(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{sumByYear: map[int]int64{2026: 80000}}
	svc := newDashboardService(repo, nil, now)

	stats, err := svc.GetStats(context.Background(), "op-1")
	require.NoError(t, err)

	assert.Equal(t, 800.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.RevenueChangePct, "no prior revenue means no delta, not a division by zero")
}

func TestGetRevenueData(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeDashboardRepo{
		payments: []*domain.Payment{
			{Amount: 30000, CreatedAt: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
			{Amount: 50000, CreatedAt: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)},
			{Amount: 25000, CreatedAt: time.Date(2026, time.April, 28, 0, 0, 0, 0, time.UTC)},
			{Amount: 100000, CreatedAt: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newDashboardService(repo, nil, now)

	buckets, err := svc.GetRevenueData(context.Background(), "op-1", 3)
	require.NoError(t, err)

	// Three buckets ending in the current month; the March payment predates
	// the window and is dropped
	require.Len(t, buckets, 3)
	assert.Equal(t, "Apr", buckets[0].Month)
	assert.Equal(t, 750.0, buckets[0].Revenue)
	assert.Equal(t, "May", buckets[1].Month)
	assert.Equal(t, 0.0, buckets[1].Revenue)
	assert.Equal(t, "Jun", buckets[2].Month)
	assert.Equal(t, 1000.0, buckets[2].Revenue)

	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), repo.paymentsFrom)
}

func TestGetActivityLog(t *testing.T) {
	store := repository.NewMemoryStore(repository.DefaultSeed())
	svc := newDashboardService(
		repository.NewMemoryDashboardRepository(store),
		repository.NewMemoryActivityRepository(store),
		time.Now(),
	)

	items, err := svc.GetActivityLog(context.Background(), seedOperatorID, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first
	assert.Equal(t, "act-0002", items[0].ID)
	assert.Equal(t, "act-0001", items[1].ID)

	items, err = svc.GetActivityLog(context.Background(), seedOperatorID, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "act-0002", items[0].ID)
}

func TestGetStats_SeedData(t *testing.T) {
	store := repository.NewMemoryStore(repository.DefaultSeed())
	svc := NewDashboardService(
		repository.NewMemoryDashboardRepository(store),
		repository.NewMemoryActivityRepository(store),
	)

	stats, err := svc.GetStats(context.Background(), seedOperatorID)
	require.NoError(t, err)

	// Seed timestamps are relative to the wall clock, so only the counts
	// with stable windows are asserted here; revenue math is covered by the
	// pinned-clock tests above
	assert.Equal(t, 2, stats.ActiveEvents)
	assert.Equal(t, 1, stats.PendingApps)
	assert.GreaterOrEqual(t, stats.TotalRevenue, 0.0)
}
