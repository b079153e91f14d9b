// Package orderrepo persists order aggregates with GORM. It maps between the
// domain Order and the OrderDTO row stored in the "orders" table.
package orderrepo

import (
	"time"

	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    int       `gorm:"index"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database row.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		Status: int(aggregate.Status()),
	}
}

// toDomain rebuilds an order aggregate from its database row via RestoreOrder,
// so rows with an invalid status are rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Status(dto.Status))
}
