// Package kafka feeds order status notifications from a Kafka topic into the
// reconciliation handler.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderUpdateReconciler reconciles one notification.
// commands.ReconcileOrderUpdateCommandHandler is the production implementation.
type OrderUpdateReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileOrderUpdateCommand) result.Outcome
}

// OrderUpdateConsumer reads notifications as a member of a consumer group and
// reconciles each one once. The offset is committed after the reconciliation
// reports an outcome, whatever the outcome; redelivery and retry are left to the
// producer. Undecodable messages are logged and skipped.
type OrderUpdateConsumer struct {
	reader     messageReader
	reconciler OrderUpdateReconciler
	logger     *slog.Logger
}

// NewOrderUpdateConsumer joins groupID and subscribes to topic.
func NewOrderUpdateConsumer(
	brokers []string,
	groupID, topic string,
	reconciler OrderUpdateReconciler,
	logger *slog.Logger,
) (*OrderUpdateConsumer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka consumer requires at least one broker")
	}
	if groupID == "" {
		return nil, errors.New("kafka consumer requires group id")
	}
	if topic == "" {
		return nil, errors.New("kafka consumer requires a topic")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	})
	return newOrderUpdateConsumer(reader, reconciler, logger), nil
}

func newOrderUpdateConsumer(
	reader messageReader,
	reconciler OrderUpdateReconciler,
	logger *slog.Logger,
) *OrderUpdateConsumer {
	return &OrderUpdateConsumer{
		reader:     reader,
		reconciler: reconciler,
		logger:     logger.With("component", "order_update_consumer"),
	}
}

// Run consumes until ctx is cancelled, then returns nil. Any other read or commit
// failure stops the consumer and is returned.
func (c *OrderUpdateConsumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Order update consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.InfoContext(ctx, "Order update consumer stopped")
				return nil
			}
			return fmt.Errorf("fetch order update: %w", err)
		}

		c.handle(ctx, msg)

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit order update offset %d: %w", msg.Offset, err)
		}
	}
}

func (c *OrderUpdateConsumer) handle(ctx context.Context, msg kafka.Message) {
	attrs := []any{
		"topic", msg.Topic,
		"partition", msg.Partition,
		"offset", msg.Offset,
	}

	n, err := notification.Parse(msg.Value)
	if err != nil {
		c.logger.ErrorContext(ctx, "Skipping undecodable order update", append(attrs, "error", err)...)
		return
	}

	cmd, err := commands.NewReconcileOrderUpdateCommand(n)
	if err != nil {
		c.logger.ErrorContext(ctx, "Skipping invalid order update", append(attrs, "error", err)...)
		return
	}

	outcome := c.reconciler.Handle(ctx, cmd)
	attrs = append(attrs,
		"order_number", n.OrderNumber(),
		"status", n.Status().String(),
		"result", outcome.Kind().String(),
		"message", outcome.Message(),
	)
	if outcome.IsAbort() {
		c.logger.WarnContext(ctx, "Order update aborted", attrs...)
		return
	}
	c.logger.InfoContext(ctx, "Order update reconciled", attrs...)
}

func (c *OrderUpdateConsumer) Close() error {
	return c.reader.Close()
}
