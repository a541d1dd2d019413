package commands

import (
	"errors"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

var (
	ErrApplyOrderStatusCommandIsNotConstructed = errors.New(
		"ApplyOrderStatusCommand must be created via NewApplyOrderStatusCommand constructor",
	)
)

// ApplyOrderStatusCommand asks for status to be applied to the local order ref,
// on behalf of the notification that asserted it.
type ApplyOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderRef     order.Ref
	status       order.Status
	notification notification.Notification

	guard guard.ConstructorGuard
}

// NewApplyOrderStatusCommand validates and builds the command.
func NewApplyOrderStatusCommand(
	orderRef order.Ref,
	status order.Status,
	n notification.Notification,
) (ApplyOrderStatusCommand, error) {
	cmd := ApplyOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderRef(orderRef),
		cmd.setStatus(status),
		cmd.setNotification(n),
	); err != nil {
		return ApplyOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderStatusCommandIsNotConstructed)
}

func (c ApplyOrderStatusCommand) OrderRef() order.Ref {
	return c.orderRef
}

func (c ApplyOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ApplyOrderStatusCommand) Notification() notification.Notification {
	return c.notification
}

func (c *ApplyOrderStatusCommand) setOrderRef(ref order.Ref) error {
	if ref.IsZero() {
		return errs.NewValueIsRequiredError("order ref")
	}
	c.orderRef = ref
	return nil
}

func (c *ApplyOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ApplyOrderStatusCommand) setNotification(n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	c.notification = n
	return nil
}
