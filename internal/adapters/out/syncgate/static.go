// Package syncgate answers whether order synchronisation is currently enabled.
package syncgate

import "context"

const DefaultDisabledMessage = "Order synchronisation is disabled"

// Static is a gate fixed at start-up from configuration.
type Static struct {
	enabled         bool
	disabledMessage string
}

// NewStatic creates a fixed gate. A blank message selects DefaultDisabledMessage.
func NewStatic(enabled bool, disabledMessage string) Static {
	if disabledMessage == "" {
		disabledMessage = DefaultDisabledMessage
	}
	return Static{enabled: enabled, disabledMessage: disabledMessage}
}

func (g Static) OrderSyncEnabled(context.Context) bool {
	return g.enabled
}

func (g Static) DisabledMessage() string {
	return g.disabledMessage
}
