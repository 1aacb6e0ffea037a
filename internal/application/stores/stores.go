// Package stores holds the four entity stores: each one owns a single slice
// of application state, loads it from a repository behind a simulated (or
// real) network boundary, and answers the derived queries the dashboard
// renders from. All state is owned by the store instance and handed out as
// value copies; there are no package-level globals.
package stores

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/entities"
	"github.com/medscribe/Clinicdashboarddesign/backend/internal/domain/providers"
)

// Clock supplies the current time. Stores accept nil and fall back to
// time.Now; tests inject fixed clocks.
type Clock func() time.Time

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// publish emits a store change event on both the aggregate channel and the
// per-collection channel. Publish failures are logged and swallowed: the
// commit has already happened and subscribers are best-effort.
func publish(ctx context.Context, bus providers.EventBus, entity entities.StoreEntity, action entities.StoreAction, entityID string) {
	if bus == nil {
		return
	}
	event := entities.NewStoreEvent(entity, action, entityID)
	for _, channel := range []string{providers.EventChannelStoreUpdates, providers.EntityChannel(entity)} {
		if err := bus.Publish(ctx, channel, event); err != nil {
			log.Warn().
				Err(err).
				Str("channel", channel).
				Str("entity", string(entity)).
				Msg("failed to publish store event")
		}
	}
}
