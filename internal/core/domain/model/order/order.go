package order

import (
	"errors"

	"showcase/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveredOrderCannotBeCancelled describes the refused Delivered -> Cancelled
	// transition. SetStatus does not return it; callers use it when reporting the refusal.
	ErrDeliveredOrderCannotBeCancelled = errors.New("a delivered order cannot be cancelled")
)

// Order is the aggregate root for a customer order. It owns an identifier and the
// current Status, and is mutated only through SetStatus.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Starts in the New status
//   - A Delivered order never becomes Cancelled
//
// An Order is not safe for concurrent mutation; the application layer loads a
// fresh copy per unit of work.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order in the New status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//
// Returns:
//   - *Order: The created order
//   - error: Validation error if the id is the zero UUID
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // Output: "New"
func NewOrder(id kernel.UUID) (*Order, error) {
	return RestoreOrder(id, New)
}

// RestoreOrder rebuilds an order from persisted state. Both the identifier and the
// status are validated, so rows holding Unknown or out-of-range statuses are
// rejected rather than loaded.
func RestoreOrder(id kernel.UUID, status Status) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder or RestoreOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SetStatus moves the order to next unless the move is Delivered -> Cancelled.
//
// Returns:
//   - true when the status was set (including when next equals the current status)
//   - false when the transition was refused; the status is left unchanged
//
// A refusal is a notice for the caller to report, not a failure:
//
//	if !o.SetStatus(order.Cancelled) {
//	    logger.Warn("transition refused", "error", order.ErrDeliveredOrderCannotBeCancelled)
//	}
//
// SetStatus does not validate next; callers check Status.Validate on external input.
func (o *Order) SetStatus(next Status) bool {
	if !o.status.CanTransitionTo(next) {
		return false
	}

	o.status = next
	return true
}
