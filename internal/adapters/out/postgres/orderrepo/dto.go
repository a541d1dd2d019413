// Package orderrepo provides the GORM persistence of local orders and the mapping
// between the order aggregate and its table row.
package orderrepo

import (
	"time"

	"ordersync/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. The unique index on the external
// order number binds each marketplace order to at most one local order.
type OrderDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	ExternalOrderNumber string `gorm:"size:255;not null;uniqueIndex"`
	Status              string `gorm:"size:255;not null;index"`
	Payload             []byte `gorm:"type:jsonb"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  int64(aggregate.Ref()),
		ExternalOrderNumber: aggregate.ExternalNumber(),
		Status:              aggregate.Status().String(),
		Payload:             aggregate.Payload(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		order.Ref(dto.ID),
		dto.ExternalOrderNumber,
		order.Status(dto.Status),
		dto.Payload,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
