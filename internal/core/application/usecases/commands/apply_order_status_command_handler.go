package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/core/ports"
)

// EventDispatcher fans an order update out to the observers of its topic.
type EventDispatcher interface {
	Dispatch(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error
}

// ApplyOrderStatusCommandHandler applies a status to a local order in one unit of work:
//
//  1. begin the transaction
//  2. fire events.UpdateTopic
//  3. fire events.StatusTopic(status)
//  4. write the status (row locked; skipped when already applied)
//  5. commit
//
// Redundant deliveries roll back and report success. Any other failure rolls back,
// is logged and reported as an abort.
//
// Example:
//
//	handler := NewApplyOrderStatusCommandHandler(uowFactory, dispatcher, logger)
//	cmd, _ := NewApplyOrderStatusCommand(55, "shipped", n)
//
//	outcome := handler.Handle(ctx, cmd)
//	// outcome.Message() == "The order's status has been updated to shipped"
type ApplyOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	dispatcher EventDispatcher
	logger     *slog.Logger
}

// NewApplyOrderStatusCommandHandler creates the status transaction handler.
func NewApplyOrderStatusCommandHandler(
	uowFactory UoWFactory,
	dispatcher EventDispatcher,
	logger *slog.Logger,
) ApplyOrderStatusCommandHandler {
	return ApplyOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "apply_order_status_handler"),
	}
}

// Handle runs the status transaction and maps its terminal state to an outcome.
func (h ApplyOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyOrderStatusCommand,
) (outcome result.Outcome) {
	if err := cmd.Validate(); err != nil {
		return h.abort(ctx, cmd, err)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return h.abort(ctx, cmd, err)
	}

	defer func() {
		r := recover()
		_ = uow.Rollback(ctx)
		if r != nil {
			outcome = h.abort(ctx, cmd, fmt.Errorf("panic: %v", r))
		}
	}()

	ref, status, n := cmd.OrderRef(), cmd.Status(), cmd.Notification()
	for _, topic := range []string{events.UpdateTopic, events.StatusTopic(status)} {
		event := events.NewOrderUpdate(topic, ref, status, n)
		if err := h.dispatcher.Dispatch(ctx, uow, event); err != nil {
			return h.abort(ctx, cmd, err)
		}
	}

	change, err := uow.OrderRepository().UpdateStatus(ctx, ref, status)
	if err != nil {
		return h.abort(ctx, cmd, err)
	}

	switch change {
	case order.StatusAlreadyApplied:
		h.logger.InfoContext(ctx, "Order status already applied",
			"order_ref", int64(ref),
			"order_number", n.OrderNumber(),
			"status", status.String(),
		)
		return result.Success(MessageOrderAlreadyUpdated)
	case order.StatusApplied:
	default:
		return h.abort(ctx, cmd, fmt.Errorf("unexpected status change %q", change.String()))
	}

	if err = uow.Commit(ctx); err != nil {
		return h.abort(ctx, cmd, err)
	}

	return result.Success(fmt.Sprintf(MessageStatusUpdated, status))
}

func (h ApplyOrderStatusCommandHandler) abort(
	ctx context.Context,
	cmd ApplyOrderStatusCommand,
	err error,
) result.Outcome {
	message := fmt.Sprintf(MessageExceptionExecutingUpdate, cmd.OrderRef(), cmd.Status(), err.Error())
	h.logger.ErrorContext(ctx, message,
		"order_ref", int64(cmd.OrderRef()),
		"order_number", cmd.Notification().OrderNumber(),
		"status", cmd.Status().String(),
		"error", err,
	)
	return result.Abort(message)
}
