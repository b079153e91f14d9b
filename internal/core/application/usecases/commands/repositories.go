package commands

import (
	"context"

	"showcase/internal/core/ports"
)

type TxManager interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type OrderRepoFactory interface {
	OrderRepository() ports.OrderRepository
}

// OrderUoW is the narrow unit of work the order handlers depend on.
type OrderUoW interface {
	TxManager
	OrderRepoFactory
}

type OrderUoWFactory interface {
	Create() OrderUoW
}
