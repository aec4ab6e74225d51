package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/dto"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/activity"
)

const seedOperatorID = "11111111-1111-4111-8111-111111111111"

func newEventsStore(t *testing.T) *EventsStore {
	t.Helper()
	memStore := repository.NewMemoryStore(repository.DefaultSeed())
	svc := service.NewEventService(
		repository.NewMemoryEventRepository(memStore),
		repository.NewMemoryApplicationRepository(memStore),
		repository.NewMemoryActivityRepository(memStore),
		activity.NopPublisher{},
	)
	return NewEventsStore(svc)
}

func TestEventsStoreLoad(t *testing.T) {
	store := newEventsStore(t)

	require.True(t, store.Load(context.Background(), seedOperatorID))
	assert.Len(t, store.Events(), 3)
	assert.False(t, store.Loading())
	assert.Empty(t, store.Err())

	event, ok := store.GetByID("ev-0001")
	require.True(t, ok)
	assert.Equal(t, "Summer Classics Under the Stars", event.Title)

	_, ok = store.GetByID("missing")
	assert.False(t, ok)
}

func TestEventsStoreCreate_Prepends(t *testing.T) {
	store := newEventsStore(t)
	ctx := context.Background()
	require.True(t, store.Load(ctx, seedOperatorID))

	event := store.Create(ctx, seedOperatorID, &dto.CreateEventRequest{
		Title:     "Rooftop Premiere",
		EventDate: "2026-10-01",
	})
	require.NotNil(t, event)

	events := store.Events()
	require.Len(t, events, 4)
	assert.Equal(t, event.ID, events[0].ID, "new event leads the collection")
}

func TestEventsStoreUpdate_ReplacesCachedEntry(t *testing.T) {
	store := newEventsStore(t)
	ctx := context.Background()
	require.True(t, store.Load(ctx, seedOperatorID))

	title := "Renamed"
	updated := store.Update(ctx, seedOperatorID, "ev-0001", &dto.UpdateEventRequest{Title: &title})
	require.NotNil(t, updated)

	cached, ok := store.GetByID("ev-0001")
	require.True(t, ok)
	assert.Equal(t, "Renamed", cached.Title)
}

func TestEventsStoreUpdate_FailureKeepsCache(t *testing.T) {
	store := newEventsStore(t)
	ctx := context.Background()
	require.True(t, store.Load(ctx, seedOperatorID))

	title := "Renamed"
	updated := store.Update(ctx, "someone-else", "ev-0001", &dto.UpdateEventRequest{Title: &title})
	assert.Nil(t, updated)
	assert.NotEmpty(t, store.Err())

	cached, ok := store.GetByID("ev-0001")
	require.True(t, ok)
	assert.Equal(t, "Summer Classics Under the Stars", cached.Title)

	// The next successful action clears the recorded error
	require.True(t, store.Load(ctx, seedOperatorID))
	assert.Empty(t, store.Err())
}

func TestEventsStoreDelete(t *testing.T) {
	store := newEventsStore(t)
	ctx := context.Background()
	require.True(t, store.Load(ctx, seedOperatorID))

	require.True(t, store.Delete(ctx, seedOperatorID, "ev-0003"))
	assert.Len(t, store.Events(), 2)
	_, ok := store.GetByID("ev-0003")
	assert.False(t, ok)
}
