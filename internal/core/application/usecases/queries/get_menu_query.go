package queries

import (
	"errors"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the active menu items, the list customers order
// from. Deactivated items are excluded.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the active menu.
// This is a parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse represents one orderable menu item.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	Description string
	CreatedAt   time.Time
}
