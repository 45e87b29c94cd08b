package queries

import (
	"errors"

	"burgercounter/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves the kitchen's work queue: orders in
// Accepted or Preparing status, oldest first, so the kitchen works FIFO.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen work queue.
// This is a parameterless query.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}
