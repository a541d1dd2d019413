package ports

import (
	"context"
	"time"

	"ordersync/internal/core/domain/model/outbox"
)

// OutboxRepository stores broker messages alongside the business transaction.
type OutboxRepository interface {
	// Add records a message in the current transaction.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnsent locks and returns up to limit unsent messages, oldest first.
	// Rows locked by a concurrent relay are skipped.
	GetUnsent(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update persists the sent state of a message.
	Update(ctx context.Context, message *outbox.Message) error

	// DeleteSentBefore removes messages sent before cutoff and returns how many
	// were removed. Unsent messages are never removed.
	DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MessagePublisher delivers a message to the broker.
type MessagePublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}
