package biz

import (
	"context"

	"shortly/internal/domain/event"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewShortenerUsecase, NewResolverUsecase)

// EventPublisher publishes domain events to the in-process bus.
// Implemented by eventbus.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
