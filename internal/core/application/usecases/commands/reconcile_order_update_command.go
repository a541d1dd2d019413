package commands

import (
	"errors"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/pkg/guard"
)

var (
	ErrReconcileOrderUpdateCommandIsNotConstructed = errors.New(
		"ReconcileOrderUpdateCommand must be created via NewReconcileOrderUpdateCommand constructor",
	)
)

// ReconcileOrderUpdateCommand carries one marketplace notification to reconcile.
//
// Example:
//
//	n, err := notification.Parse(body)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewReconcileOrderUpdateCommand(n)
//	outcome := handler.Handle(ctx, cmd)
type ReconcileOrderUpdateCommand struct {
	notification notification.Notification

	guard guard.ConstructorGuard
}

// NewReconcileOrderUpdateCommand wraps a constructed notification.
func NewReconcileOrderUpdateCommand(n notification.Notification) (ReconcileOrderUpdateCommand, error) {
	if err := n.Validate(); err != nil {
		return ReconcileOrderUpdateCommand{}, err
	}

	return ReconcileOrderUpdateCommand{
		notification: n,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderUpdateCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderUpdateCommandIsNotConstructed)
}

func (c ReconcileOrderUpdateCommand) Notification() notification.Notification {
	return c.notification
}
