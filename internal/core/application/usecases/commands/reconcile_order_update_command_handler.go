package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/core/ports"
	"ordersync/internal/pkg/errs"
)

// OrderStatusApplier applies a status to an existing local order.
// ApplyOrderStatusCommandHandler is the production implementation.
type OrderStatusApplier interface {
	Handle(ctx context.Context, cmd ApplyOrderStatusCommand) result.Outcome
}

// ReconcileOrderUpdateCommandHandler makes the local order consistent with a
// marketplace notification. It checks the sync gate, resolves or creates the local
// order, then delegates to the status transaction. Every path ends in an outcome;
// nothing is returned as an error.
type ReconcileOrderUpdateCommandHandler struct {
	gate    ports.OrderSyncGate
	locator ports.OrderLocator
	creator ports.OrderCreator
	applier OrderStatusApplier
	logger  *slog.Logger
}

// NewReconcileOrderUpdateCommandHandler wires the handler's collaborators.
func NewReconcileOrderUpdateCommandHandler(
	gate ports.OrderSyncGate,
	locator ports.OrderLocator,
	creator ports.OrderCreator,
	applier OrderStatusApplier,
	logger *slog.Logger,
) ReconcileOrderUpdateCommandHandler {
	return ReconcileOrderUpdateCommandHandler{
		gate:    gate,
		locator: locator,
		creator: creator,
		applier: applier,
		logger:  logger.With("component", "reconcile_order_update_handler"),
	}
}

// Handle reconciles one notification.
func (h ReconcileOrderUpdateCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileOrderUpdateCommand,
) (outcome result.Outcome) {
	if err := cmd.Validate(); err != nil {
		message := fmt.Sprintf(MessageInvalidOrderUpdate, err.Error())
		h.logger.ErrorContext(ctx, message, "error", err)
		return result.Abort(message)
	}

	n := cmd.Notification()

	defer func() {
		if r := recover(); r != nil {
			outcome = h.abort(ctx, MessageExceptionReconcilingOrder, n, fmt.Errorf("panic: %v", r))
		}
	}()

	if !h.gate.OrderSyncEnabled(ctx) {
		message := h.gate.DisabledMessage()
		h.logger.WarnContext(ctx, message)
		return result.Abort(message)
	}

	ref, found, err := h.locator.FindRefByExternalNumber(ctx, n.OrderNumber())
	if err != nil {
		return h.abort(ctx, MessageExceptionLocatingOrder, n, err)
	}

	if !found {
		ref, err = h.createOrder(ctx, n)
		if err != nil {
			return h.abort(ctx, MessageExceptionCreatingOrder, n, err)
		}
	}

	applyCmd, err := NewApplyOrderStatusCommand(ref, n.Status(), n)
	if err != nil {
		return h.abort(ctx, MessageExceptionReconcilingOrder, n, err)
	}

	return h.applier.Handle(ctx, applyCmd)
}

// createOrder invokes the creator. When a concurrent reconciliation created the
// same order first, the winner's order is resolved and used instead.
func (h ReconcileOrderUpdateCommandHandler) createOrder(
	ctx context.Context,
	n notification.Notification,
) (order.Ref, error) {
	created, err := h.creator.CreateFromNotification(ctx, n)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		ref, found, lookupErr := h.locator.FindRefByExternalNumber(ctx, n.OrderNumber())
		if lookupErr != nil || !found {
			return 0, errors.Join(err, lookupErr)
		}

		h.logger.InfoContext(ctx, "Order was created concurrently, continuing with existing order",
			"order_ref", int64(ref),
			"order_number", n.OrderNumber(),
		)
		return ref, nil
	}
	if err != nil {
		return 0, err
	}

	if !created.IsPersisted() {
		return 0, ErrLocalOrderNotCreated
	}

	return created.Ref(), nil
}

func (h ReconcileOrderUpdateCommandHandler) abort(
	ctx context.Context,
	format string,
	n notification.Notification,
	err error,
) result.Outcome {
	message := fmt.Sprintf(format, n.OrderNumber(), err.Error())
	h.logger.ErrorContext(ctx, message,
		"order_number", n.OrderNumber(),
		"status", n.Status().String(),
		"error", err,
	)
	return result.Abort(message)
}
