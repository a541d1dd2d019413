// Package queries contains read operations on synchronised orders.
// Queries bypass the aggregates and read optimised models straight from storage.
package queries

import (
	"errors"
	"strings"
	"time"

	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderByNumberQuery looks up the local order bound to a marketplace order number.
//
// Example:
//
//	query, err := NewGetOrderByNumberQuery("R100")
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // not synchronised yet
//	}
//	fmt.Printf("Order %s is %s\n", o.OrderNumber, o.Status)
type GetOrderByNumberQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates the query. orderNumber must not be blank.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetOrderByNumberQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

// OrderResponse is the read model of a synchronised order.
type OrderResponse struct {
	Ref         order.Ref    `json:"ref"`
	OrderNumber string       `json:"order_number"`
	Status      order.Status `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
