package ports

import (
	"context"

	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
)

// OrderLocator maps an external order number to the local order bound to it.
// It never mutates state.
type OrderLocator interface {
	FindRefByExternalNumber(ctx context.Context, externalNumber string) (order.Ref, bool, error)
}

// OrderCreator builds and persists a local order from a notification.
// A nil order or one without a reference is treated as a failed creation.
type OrderCreator interface {
	CreateFromNotification(ctx context.Context, n notification.Notification) (*order.Order, error)
}

// OrderSyncGate reports whether order synchronisation is enabled.
type OrderSyncGate interface {
	OrderSyncEnabled(ctx context.Context) bool

	// DisabledMessage explains why synchronisation is disabled.
	DisabledMessage() string
}

// EventScope exposes the transaction an event is being dispatched in, so that
// observers can record durable side effects that commit or roll back with it.
type EventScope interface {
	OutboxRepository() OutboxRepository
}

// OrderEventObserver reacts to order update events. Observers run inside the
// status transaction and may be invoked again for a redelivered notification,
// so they must be idempotent or only act through the EventScope.
type OrderEventObserver interface {
	Observe(ctx context.Context, scope EventScope, event events.OrderUpdate) error
}
