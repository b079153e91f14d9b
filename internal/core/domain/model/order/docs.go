// Package order provides the Order aggregate and its Status state machine.
//
// The package includes:
//   - Order: The aggregate root holding an identifier and the current status
//   - Status: The four order states and the single transition rule between them
//
// Key business rules:
//   - A new order starts in the New status
//   - A Delivered order can never become Cancelled; such a request is refused
//     and reported, but it is not an error
//   - Every other transition is applied as requested, including moving to the
//     same status or moving "backwards" (Delivered -> New, Cancelled -> InProgress)
package order
