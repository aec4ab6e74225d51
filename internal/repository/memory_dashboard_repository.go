package repository

import (
	"context"
	"sort"
	"time"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// MemoryDashboardRepository implements DashboardRepository over a MemoryStore
type MemoryDashboardRepository struct {
	store *MemoryStore
}

// NewMemoryDashboardRepository creates a new MemoryDashboardRepository
func NewMemoryDashboardRepository(store *MemoryStore) *MemoryDashboardRepository {
	return &MemoryDashboardRepository{store: store}
}

// operatorContractIDs returns the ids of contracts owned by the operator and
// created in [from, to). A zero to means no upper bound.
func (r *MemoryDashboardRepository) operatorContractIDs(operatorID string, from, to time.Time) map[string]struct{} {
	r.store.contractsMu.RLock()
	defer r.store.contractsMu.RUnlock()

	ids := make(map[string]struct{})
	for _, c := range r.store.contracts {
		if c.OperatorID != operatorID {
			continue
		}
		if c.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !c.CreatedAt.Before(to) {
			continue
		}
		ids[c.ID] = struct{}{}
	}
	return ids
}

// SumCompletedPayments totals completed payments against the operator's
// contracts created in [from, to)
func (r *MemoryDashboardRepository) SumCompletedPayments(ctx context.Context, operatorID string, from, to time.Time) (int64, error) {
	contractIDs := r.operatorContractIDs(operatorID, from, to)

	r.store.paymentsMu.RLock()
	defer r.store.paymentsMu.RUnlock()

	var total int64
	for _, p := range r.store.payments {
		if p.Status != domain.PaymentStatusCompleted {
			continue
		}
		if _, ok := contractIDs[p.ContractID]; !ok {
			continue
		}
		total += p.Amount
	}
	return total, nil
}

// ListCompletedPayments returns completed payments against the operator's
// contracts created at or after from, ordered by creation time
func (r *MemoryDashboardRepository) ListCompletedPayments(ctx context.Context, operatorID string, from time.Time) ([]*domain.Payment, error) {
	contractIDs := r.operatorContractIDs(operatorID, from, time.Time{})

	r.store.paymentsMu.RLock()
	defer r.store.paymentsMu.RUnlock()

	payments := make([]*domain.Payment, 0)
	for _, p := range r.store.payments {
		if p.Status != domain.PaymentStatusCompleted {
			continue
		}
		if _, ok := contractIDs[p.ContractID]; !ok {
			continue
		}
		cp := *p
		payments = append(payments, &cp)
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
	return payments, nil
}

// CountPublishedFutureEvents counts published events dated today or later.
// When createdBefore is non-nil, only events created before it count.
func (r *MemoryDashboardRepository) CountPublishedFutureEvents(ctx context.Context, operatorID, today string, createdBefore *time.Time) (int, error) {
	r.store.eventsMu.RLock()
	defer r.store.eventsMu.RUnlock()

	count := 0
	for _, e := range r.store.events {
		if e.OperatorID != operatorID || e.Status != domain.EventStatusPublished {
			continue
		}
		if e.EventDate < today {
			continue
		}
		if createdBefore != nil && !e.CreatedAt.Before(*createdBefore) {
			continue
		}
		count++
	}
	return count, nil
}

// CountPendingApplications counts pending applications on the operator's
// events. When submittedBefore is non-nil, only older submissions count.
func (r *MemoryDashboardRepository) CountPendingApplications(ctx context.Context, operatorID string, submittedBefore *time.Time) (int, error) {
	r.store.eventsMu.RLock()
	eventIDs := make(map[string]struct{})
	for _, e := range r.store.events {
		if e.OperatorID == operatorID {
			eventIDs[e.ID] = struct{}{}
		}
	}
	r.store.eventsMu.RUnlock()

	r.store.appsMu.RLock()
	defer r.store.appsMu.RUnlock()

	count := 0
	for _, a := range r.store.apps {
		if a.Status != domain.ApplicationStatusPending {
			continue
		}
		if _, ok := eventIDs[a.EventID]; !ok {
			continue
		}
		if submittedBefore != nil && !a.SubmittedAt.Before(*submittedBefore) {
			continue
		}
		count++
	}
	return count, nil
}
