// Package ports defines the contracts between the order sync core and its adapters.
// Persistence, messaging and configuration collaborators are all expressed here so
// that use cases receive them by injection rather than resolving them globally.
package ports

import (
	"context"

	"ordersync/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for local orders.
type OrderRepository interface {
	// Add persists a new order and returns its generated reference.
	// Returns errs.ErrObjectAlreadyExists if the external order number is already bound.
	Add(ctx context.Context, aggregate *order.Order) (order.Ref, error)

	// Get retrieves an order by its local reference.
	Get(ctx context.Context, ref order.Ref) (*order.Order, error)

	// FindRefByExternalNumber resolves the local reference bound to an external order
	// number. The boolean is false when no order is bound yet.
	FindRefByExternalNumber(ctx context.Context, externalNumber string) (order.Ref, bool, error)

	// UpdateStatus writes status to the order, holding a row lock for the rest of the
	// transaction. When the stored status already equals status nothing is written
	// and order.StatusAlreadyApplied is returned.
	UpdateStatus(ctx context.Context, ref order.Ref, status order.Status) (order.StatusChange, error)
}
