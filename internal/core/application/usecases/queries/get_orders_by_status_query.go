package queries

import (
	"errors"

	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

const (
	DefaultOrdersPageSize = 50
	MaxOrdersPageSize     = 500
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery lists local orders currently in a status, oldest first.
//
// Example:
//
//	query, _ := NewGetOrdersByStatusQuery("shipped", 100)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipped orders: %w", err)
//	}
//	fmt.Printf("Found %d shipped orders\n", len(orders))
type GetOrdersByStatusQuery struct {
	status order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates the query. A zero limit selects
// DefaultOrdersPageSize.
func NewGetOrdersByStatusQuery(status order.Status, limit int) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	if limit == 0 {
		limit = DefaultOrdersPageSize
	}
	if limit < 1 || limit > MaxOrdersPageSize {
		return GetOrdersByStatusQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersPageSize)
	}

	return GetOrdersByStatusQuery{
		status: status,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q GetOrdersByStatusQuery) Limit() int {
	return q.limit
}
