package commands

import (
	"context"
	"log/slog"

	"showcase/internal/core/domain/model/order"

	"github.com/zoobzio/metricz"
)

const (
	StatusAppliedTotal = metricz.Key("order.status.applied.total")
	StatusRefusedTotal = metricz.Key("order.status.refused.total")
)

// SetOrderStatusResult reports the outcome of a status change request.
type SetOrderStatusResult struct {
	// Applied is false when the order refused the transition.
	Applied bool
	// Status is the order's status once the request has been handled.
	Status order.Status
}

type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
	metrics    *metricz.Registry
}

func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) SetOrderStatusCommandHandler {
	metrics := metricz.New()
	metrics.Counter(StatusAppliedTotal)
	metrics.Counter(StatusRefusedTotal)

	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "set_order_status_handler"),
		metrics:    metrics,
	}
}

// Metrics returns the counters of applied and refused transitions.
func (h *SetOrderStatusCommandHandler) Metrics() *metricz.Registry {
	return h.metrics
}

// Handle loads the order, requests the transition and stores the result.
// A refused transition is logged as a warning and reported through the result;
// it is not an error and nothing is written.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (SetOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return SetOrderStatusResult{}, err
	}

	previous := o.Status()
	if !o.SetStatus(cmd.Status()) {
		h.logger.WarnContext(ctx, order.ErrDeliveredOrderCannotBeCancelled.Error(),
			"order_id", o.ID().String(),
			"status", previous.String(),
			"requested", cmd.Status().String(),
		)
		h.metrics.Counter(StatusRefusedTotal).Inc()
		return SetOrderStatusResult{Applied: false, Status: previous}, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return SetOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetOrderStatusResult{}, err
	}

	h.metrics.Counter(StatusAppliedTotal).Inc()
	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID().String(),
		"from", previous.String(),
		"to", o.Status().String(),
	)
	return SetOrderStatusResult{Applied: true, Status: o.Status()}, nil
}
