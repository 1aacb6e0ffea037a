// Package events provides the in-process event bus the entity stores
// publish their committed changes on. The whole system runs in one process
// with no external broker, so delivery is direct channel fan-out.
package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

const subscriberBuffer = 100

// MemoryEventBus implements the EventBus interface with in-process fan-out
type MemoryEventBus struct {
	subscribers map[string]map[chan *entities.StoreEvent]struct{}
	mu          sync.RWMutex
	closed      bool
}

// NewMemoryEventBus creates a new in-memory event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.StoreEvent]struct{}),
	}
}

// Publish delivers an event to all subscribers of a channel. Subscribers
// that cannot keep up are skipped rather than blocking the publisher.
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.StoreEvent) error {
	if event == nil {
		return apperrors.NewValidationError("event is required")
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return apperrors.NewOperationError("event bus is closed", nil)
	}

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			log.Warn().
				Str("channel", channel).
				Str("event_id", event.ID).
				Msg("subscriber channel full, skipping event")
		}
	}
	return nil
}

// Subscribe registers a subscriber on a channel. The subscription is
// removed and the channel closed when ctx is cancelled.
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.StoreEvent, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, apperrors.NewOperationError("event bus is closed", nil)
	}

	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.StoreEvent]struct{})
	}

	eventChan := make(chan *entities.StoreEvent, subscriberBuffer)
	b.subscribers[channel][eventChan] = struct{}{}
	subscriberCount := len(b.subscribers[channel])
	b.mu.Unlock()

	log.Debug().
		Str("channel", channel).
		Int("subscribers", subscriberCount).
		Msg("subscribed to channel")

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, eventChan)
	}()

	return eventChan, nil
}

// Unsubscribe drops every subscriber on a channel.
func (b *MemoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close closes the event bus and all subscriptions.
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}
	return nil
}

func (b *MemoryEventBus) removeSubscriber(channel string, eventChan chan *entities.StoreEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, exists := b.subscribers[channel]
	if !exists {
		return
	}
	if _, ok := subscribers[eventChan]; !ok {
		return
	}

	delete(subscribers, eventChan)
	close(eventChan)

	if len(subscribers) == 0 {
		delete(b.subscribers, channel)
	}
}
