package queries

import (
	"errors"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/guard"
)

var ErrGetSideDishesQueryIsNotConstructed = errors.New(
	"GetSideDishesQuery must be created via NewGetSideDishesQuery constructor",
)

// GetSideDishesQuery retrieves the active side dishes.
type GetSideDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSideDishesQuery creates a query for the active side dishes.
// This is a parameterless query.
func NewGetSideDishesQuery() GetSideDishesQuery {
	return GetSideDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSideDishesQuery) Validate() error {
	return q.guard.Validate(ErrGetSideDishesQueryIsNotConstructed)
}

// GetSideDishesQueryResponse represents one orderable side dish.
type GetSideDishesQueryResponse struct {
	ID   kernel.UUID
	Name string
	Icon string
}
