// Package events defines the events fired while a status notification is reconciled.
//
// Two topics are fired for every notification: UpdateTopic for any update and a
// status-specific topic built by StatusTopic. Status topics are derived at runtime
// from the status string, so any status produces a topic and no allow-list exists.
package events

import (
	"encoding/json"

	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
)

const (
	// UpdateTopic is fired for every received order update.
	UpdateTopic = "order-update"

	statusTopicPrefix = "order-status-update-"
)

// StatusTopic returns the topic fired for updates to the given status,
// e.g. "order-status-update-shipped".
func StatusTopic(status order.Status) string {
	return statusTopicPrefix + status.String()
}

// OrderUpdate carries a received update to observers.
type OrderUpdate struct {
	Topic        string
	OrderRef     order.Ref
	Status       order.Status
	Notification notification.Notification
}

// NewOrderUpdate builds the event for topic.
func NewOrderUpdate(topic string, ref order.Ref, status order.Status, n notification.Notification) OrderUpdate {
	return OrderUpdate{
		Topic:        topic,
		OrderRef:     ref,
		Status:       status,
		Notification: n,
	}
}

type orderUpdateJSON struct {
	LocalOrderRef int64                     `json:"local_order_ref"`
	Status        string                    `json:"status"`
	Notification  notification.Notification `json:"notification"`
}

// MarshalJSON encodes the event payload as {local_order_ref, status, notification}.
func (e OrderUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderUpdateJSON{
		LocalOrderRef: int64(e.OrderRef),
		Status:        e.Status.String(),
		Notification:  e.Notification,
	})
}
