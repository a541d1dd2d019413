package order

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"ordersync/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Ref is the local reference of a persisted order. The zero value means
// the order has not been persisted yet.
type Ref int64

func (r Ref) IsZero() bool {
	return r == 0
}

func (r Ref) String() string {
	return strconv.FormatInt(int64(r), 10)
}

// Order is the local copy of a marketplace order.
//
// Order follows these invariants:
//   - It is bound to exactly one non-blank external order number
//   - Its ref is zero until the repository persists it
//   - Its status only changes through ChangeStatus
type Order struct {
	ref            Ref
	externalNumber string
	status         Status

	// payload is the raw notification the order was created from
	payload []byte

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an unpersisted order for the given external order number.
// The status stays Unset until the first notification is reconciled.
//
// Example:
//
//	o, err := order.NewOrder("R100", rawNotification, time.Now())
//	if err != nil {
//	    return err
//	}
//	ref, err := uow.OrderRepository().Add(ctx, o)
func NewOrder(externalNumber string, payload []byte, now time.Time) (*Order, error) {
	o := &Order{
		status:        Unset,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := o.setExternalNumber(externalNumber); err != nil {
		return nil, err
	}
	o.payload = cloneBytes(payload)

	return o, nil
}

// RestoreOrder rebuilds a persisted order from storage.
func RestoreOrder(
	ref Ref,
	externalNumber string,
	status Status,
	payload []byte,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if ref.IsZero() {
		return nil, errs.NewValueIsRequiredError("order ref")
	}

	o := &Order{
		ref:           ref,
		status:        status,
		payload:       cloneBytes(payload),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := o.setExternalNumber(externalNumber); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) Ref() Ref {
	return o.ref
}

// IsPersisted reports whether the order carries a local reference.
func (o *Order) IsPersisted() bool {
	return o != nil && o.isConstructed && !o.ref.IsZero()
}

func (o *Order) ExternalNumber() string {
	return o.externalNumber
}

func (o *Order) Status() Status {
	return o.status
}

// Payload returns a copy of the notification the order was created from.
func (o *Order) Payload() []byte {
	return cloneBytes(o.payload)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to target.
//
// Returns StatusAlreadyApplied, leaving the order untouched, when the stored status
// already equals target. Returns StatusApplied after updating the status otherwise.
func (o *Order) ChangeStatus(target Status, now time.Time) (StatusChange, error) {
	if err := o.Validate(); err != nil {
		return statusChangeUnknown, err
	}

	change, err := o.status.TransitionTo(target)
	if err != nil {
		return statusChangeUnknown, err
	}

	if change == StatusApplied {
		o.status = target
		o.updatedAt = now.UTC()
	}
	return change, nil
}

func (o *Order) setExternalNumber(externalNumber string) error {
	externalNumber = strings.TrimSpace(externalNumber)
	if externalNumber == "" {
		return errs.NewValueIsRequiredError("external order number")
	}
	o.externalNumber = externalNumber
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
