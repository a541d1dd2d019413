package commands

import (
	"context"
	"encoding/json"
	"time"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates the local order bound to a marketplace order
// number. The order starts without a status; the status transaction applies the
// notified status right after.
//
// It also serves as the ports.OrderCreator of the reconciliation handler.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(n)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // another delivery of the same order won the race
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle persists a new order for the command's notification and returns it as
// stored. The whole notification is kept as the order payload.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n := cmd.Notification()
	payload, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(n.OrderNumber(), payload, h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ref, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	created, err := orderRepo.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// CreateFromNotification implements ports.OrderCreator.
func (h CreateOrderCommandHandler) CreateFromNotification(
	ctx context.Context,
	n notification.Notification,
) (*order.Order, error) {
	cmd, err := NewCreateOrderCommand(n)
	if err != nil {
		return nil, err
	}
	return h.Handle(ctx, cmd)
}
