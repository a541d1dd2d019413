package commands

import "errors"

// Outcome messages reported to the caller of a reconciliation.
const (
	MessageStatusUpdated       = "The order's status has been updated to %s"
	MessageOrderAlreadyUpdated = "The order has been updated"

	MessageExceptionCreatingOrder    = "Exception creating order %s: %s"
	MessageExceptionLocatingOrder    = "Exception locating order %s: %s"
	MessageExceptionExecutingUpdate  = "Exception executing status update for order %s to status %s: %s"
	MessageExceptionReconcilingOrder = "Exception reconciling order %s: %s"
	MessageInvalidOrderUpdate        = "Invalid order update: %s"
)

// ErrLocalOrderNotCreated is reported when the order creator returns without a
// persisted order.
var ErrLocalOrderNotCreated = errors.New("No local order object was returned from creation")
