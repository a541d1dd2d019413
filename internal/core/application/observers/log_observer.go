package observers

import (
	"context"
	"log/slog"

	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/ports"
)

// LogObserver logs received updates.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger.With("component", "order_update_log_observer")}
}

func (o *LogObserver) Observe(ctx context.Context, _ ports.EventScope, event events.OrderUpdate) error {
	o.logger.InfoContext(ctx, "Order update received",
		"topic", event.Topic,
		"order_ref", int64(event.OrderRef),
		"order_number", event.Notification.OrderNumber(),
		"status", event.Status.String(),
	)
	return nil
}
