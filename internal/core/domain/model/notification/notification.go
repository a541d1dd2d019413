package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"

	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

const (
	FieldOrderNumber = "order_number"
	FieldStatus      = "status"
)

var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or Parse",
)

// Notification is an immutable order status notification.
type Notification struct {
	orderNumber string
	status      order.Status
	payload     map[string]any

	guard guard.ConstructorGuard
}

// NewNotification builds a notification from its required fields and an optional
// payload of additional fields. The required fields always win over payload keys
// of the same name.
//
// Example:
//
//	n, err := notification.NewNotification("R100", "shipped", map[string]any{
//	    "shipping_provider": "UPS",
//	})
func NewNotification(orderNumber, status string, payload map[string]any) (Notification, error) {
	n := Notification{
		payload: make(map[string]any, len(payload)+2),
		guard:   guard.NewConstructorGuard(),
	}
	maps.Copy(n.payload, payload)

	if err := errors.Join(
		n.setOrderNumber(orderNumber),
		n.setStatus(status),
	); err != nil {
		return Notification{}, err
	}

	n.payload[FieldOrderNumber] = n.orderNumber
	n.payload[FieldStatus] = n.status.String()
	return n, nil
}

// Parse decodes a JSON object into a Notification. Every field of the object is
// kept in the payload; numbers are preserved as json.Number.
func Parse(data []byte) (Notification, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Notification{}, errs.NewValueIsInvalidErrorWithCause("notification", err)
	}
	if fields == nil {
		return Notification{}, errs.NewValueIsInvalidErrorWithCause(
			"notification", errors.New("expected a JSON object"),
		)
	}

	orderNumber, err := stringField(fields, FieldOrderNumber)
	if err != nil {
		return Notification{}, err
	}
	status, err := stringField(fields, FieldStatus)
	if err != nil {
		return Notification{}, err
	}

	return NewNotification(orderNumber, status, fields)
}

// Validate ensures the notification was built through a constructor.
func (n Notification) Validate() error {
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n Notification) OrderNumber() string {
	return n.orderNumber
}

func (n Notification) Status() order.Status {
	return n.status
}

// Payload returns a shallow copy of every field of the notification,
// including order_number and status.
func (n Notification) Payload() map[string]any {
	return maps.Clone(n.payload)
}

// Field returns a single payload field.
func (n Notification) Field(name string) (any, bool) {
	v, ok := n.payload[name]
	return v, ok
}

// MarshalJSON encodes the full payload.
func (n Notification) MarshalJSON() ([]byte, error) {
	if n.payload == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(n.payload)
}

func (n *Notification) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError(FieldOrderNumber)
	}
	n.orderNumber = orderNumber
	return nil
}

func (n *Notification) setStatus(status string) error {
	s, err := order.NewStatus(status)
	if err != nil {
		return err
	}
	n.status = s
	return nil
}

func stringField(fields map[string]any, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return "", errs.NewValueIsRequiredError(name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("expected string, got %T", raw))
	}
	return s, nil
}
