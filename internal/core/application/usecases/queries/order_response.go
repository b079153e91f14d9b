package queries

import (
	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID     kernel.UUID
	Status order.Status
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var id uuid.UUID
	var status int

	if err := row.Scan(&id, &status); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	s := order.Status(status)
	if err = s.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{ID: orderID, Status: s}, nil
}
