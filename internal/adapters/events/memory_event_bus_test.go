package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/adapters/events"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventBus_PublishReachesSubscribers(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, "store:updates")
	require.NoError(t, err)

	event := entities.NewStoreEvent(entities.StoreEntityPatients, entities.StoreActionLoaded, "")
	require.NoError(t, bus.Publish(context.Background(), "store:updates", event))

	select {
	case received := <-ch:
		assert.Equal(t, event.ID, received.ID)
		assert.Equal(t, entities.StoreEntityPatients, received.Entity)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestMemoryEventBus_ChannelsAreIsolated(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, "store:patients")
	require.NoError(t, err)

	event := entities.NewStoreEvent(entities.StoreEntityTranscriptions, entities.StoreActionCreated, "42")
	require.NoError(t, bus.Publish(context.Background(), "store:transcriptions", event))

	select {
	case <-ch:
		t.Fatal("event leaked across channels")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryEventBus_SubscriptionEndsWithContext(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(ctx, "store:updates")
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscriber channel was not closed")
	}
}

func TestMemoryEventBus_ClosedBusRejectsOperations(t *testing.T) {
	bus := events.NewMemoryEventBus()
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), "store:updates",
		entities.NewStoreEvent(entities.StoreEntityAuth, entities.StoreActionUpdated, "1"))
	assert.Error(t, err)

	_, err = bus.Subscribe(context.Background(), "store:updates")
	assert.Error(t, err)
}
