package order

import (
	"fmt"
	"strings"

	"showcase/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──> InProgress ──> Delivered ──X──> Cancelled
//
// The diagram shows the usual flow. Any status may move to any other status,
// except Delivered -> Cancelled, which is refused.
// There is no terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the status of a freshly created order.
	New

	// InProgress indicates the order is being prepared or carried.
	InProgress

	// Delivered indicates the order reached its customer.
	// A delivered order can no longer be cancelled.
	Delivered

	// Cancelled indicates the order was called off.
	Cancelled
)

var statusStrings = map[Status]string{
	Unknown:    "Unknown",
	New:        "New",
	InProgress: "InProgress",
	Delivered:  "Delivered",
	Cancelled:  "Cancelled",
}

// parseableStatuses maps normalized names (lower case, no separators) to statuses.
var parseableStatuses = map[string]Status{
	"new":        New,
	"inprogress": InProgress,
	"delivered":  Delivered,
	"cancelled":  Cancelled,
	"canceled":   Cancelled,
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{New, InProgress, Delivered, Cancelled}
}

// ParseStatus converts a status name into a Status. Matching ignores case and
// the separators '_', '-' and ' ', so "IN_PROGRESS", "in-progress" and
// "InProgress" all yield InProgress.
//
// Returns a *errs.ValueIsInvalidError for any other input, including "Unknown".
func ParseStatus(s string) (Status, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	if status, ok := parseableStatuses[normalized]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of New, InProgress, Delivered or
// Cancelled. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if s < New || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enum. It implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether an order in status s may move to next.
//
// The only refused transition is Delivered -> Cancelled. Self transitions and
// backward moves are allowed:
//
//	order.Delivered.CanTransitionTo(order.Cancelled) // false
//	order.Delivered.CanTransitionTo(order.New)       // true
//	order.Cancelled.CanTransitionTo(order.InProgress) // true
func (s Status) CanTransitionTo(next Status) bool {
	return !(s == Delivered && next == Cancelled)
}
