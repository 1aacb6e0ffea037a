package providers

import (
	"context"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to store
// change events
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.StoreEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.StoreEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelStoreUpdates carries every store change
	EventChannelStoreUpdates = "store:updates"

	// EventChannelEntityPrefix is the prefix for per-collection channels
	EventChannelEntityPrefix = "store:"
)

// EntityChannel returns the channel name for a specific collection
func EntityChannel(entity entities.StoreEntity) string {
	return EventChannelEntityPrefix + string(entity)
}
