// Package notification models a marketplace order status notification.
//
// A Notification asserts a target status for an external order. Besides the two
// required fields (order_number and status) it carries an open-ended payload that is
// forwarded unchanged to order creation and to emitted events. Notifications are
// immutable once built.
package notification
