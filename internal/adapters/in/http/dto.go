package http

import (
	"showcase/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the JSON form of an order.
type Order struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// StatusChange is the body of PUT /api/v1/orders/:id/status.
type StatusChange struct {
	Status string `json:"status"`
}

// StatusChangeResult reports whether the requested status was applied.
// Applied is false when a delivered order was asked to be cancelled.
type StatusChangeResult struct {
	ID      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Applied bool      `json:"applied"`
}

// SeasonName pairs a season identifier with its display name.
type SeasonName struct {
	Season string `json:"season"`
	Name   string `json:"name"`
}

// TextProcessing is the body of POST /api/v1/text/process. Stages are applied
// in the listed order, first stage first.
type TextProcessing struct {
	Stages []string `json:"stages"`
	Text   string   `json:"text"`
}

// TextResult carries the processed text.
type TextResult struct {
	Result string `json:"result"`
}

// Journal lists the recorded messages, oldest first.
type Journal struct {
	Entries []string `json:"entries"`
}

// Metrics reports how many status changes were applied and refused since start.
type Metrics struct {
	StatusApplied int64 `json:"status_applied"`
	StatusRefused int64 `json:"status_refused"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{ID: o.ID.Bytes(), Status: o.Status.String()}
}
