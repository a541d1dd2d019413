package observers

import (
	"context"
	"encoding/json"
	"time"

	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/domain/model/kernel"
	"ordersync/internal/core/domain/model/outbox"
	"ordersync/internal/core/ports"
)

// OutboxForwarder records every observed event as an outbox message for the broker.
// The message is written through the event scope, so it only becomes visible (and
// only gets relayed) if the status transaction commits.
type OutboxForwarder struct {
	topic string
	now   func() time.Time
}

// NewOutboxForwarder creates a forwarder publishing to the broker topic.
func NewOutboxForwarder(topic string) *OutboxForwarder {
	return &OutboxForwarder{
		topic: topic,
		now:   time.Now,
	}
}

func (f *OutboxForwarder) Observe(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message, err := outbox.NewMessage(
		kernel.NewUUID(),
		f.topic,
		event.Notification.OrderNumber(),
		payload,
		f.now(),
	)
	if err != nil {
		return err
	}

	return scope.OutboxRepository().Add(ctx, message)
}
