package queries

import (
	"context"

	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler reads a single order with raw SQL.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates the handler.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError when no local order is
// bound to the number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_number,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE external_order_number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	var resp OrderResponse
	if err = scanOrder(rows, &resp); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, resp *OrderResponse) error {
	var id int64
	var status string

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return err
	}

	resp.Ref = order.Ref(id)
	resp.Status = order.Status(status)
	return nil
}
