package commands

import (
	"errors"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create the local order for a
// marketplace notification that has no local order yet.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(n)
//	if err != nil {
//	    return fmt.Errorf("invalid notification: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s bound to local order %s", n.OrderNumber(), created.Ref())
type CreateOrderCommand struct {
	notification notification.Notification

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for the given notification.
func NewCreateOrderCommand(n notification.Notification) (CreateOrderCommand, error) {
	if err := n.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		notification: n,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Notification returns the notification the order is created from.
func (c CreateOrderCommand) Notification() notification.Notification {
	return c.notification
}
