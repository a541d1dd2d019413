package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordersync/internal/core/ports"
)

// RelayOutboxCommandHandler publishes committed outbox messages and marks them sent.
//
// Rows are locked for the life of the transaction, so concurrent relays never pick
// the same message. When publishing or marking a message fails the messages relayed
// so far are still committed; the rest stay pending for the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
	now        func() time.Time
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.MessagePublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages published.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	messages, err := outboxRepo.GetUnsent(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	sent := 0
	var relayErr error
	for _, msg := range messages {
		if err = h.publisher.Publish(ctx, msg.Topic(), msg.Key(), msg.Payload()); err != nil {
			relayErr = fmt.Errorf("publish outbox message %s: %w", msg.ID(), err)
			break
		}

		if err = msg.MarkSent(h.now()); err != nil {
			relayErr = fmt.Errorf("mark outbox message %s sent: %w", msg.ID(), err)
			break
		}
		if err = outboxRepo.Update(ctx, msg); err != nil {
			relayErr = fmt.Errorf("update outbox message %s: %w", msg.ID(), err)
			break
		}
		sent++
	}

	if sent > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, errors.Join(relayErr, err)
		}
	}

	return sent, relayErr
}
