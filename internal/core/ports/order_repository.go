package ports

import (
	"context"

	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order aggregate.
	// Returns an errs.ObjectNotFoundError if no such order is stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such order is stored.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order ordered by identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
