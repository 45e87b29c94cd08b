package ports

import (
	"context"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the catalog.
// Deactivated records stay in the store so historical orders keep resolving.
type MenuRepository interface {
	// AddItem persists a new menu item.
	AddItem(ctx context.Context, aggregate *menu.Item) error

	// UpdateItem persists edits to an existing menu item, including
	// soft-deactivation via the active flag.
	UpdateItem(ctx context.Context, aggregate *menu.Item) error

	// GetItem retrieves a menu item regardless of its active flag.
	GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetActiveItem retrieves a menu item that is currently orderable.
	// Inactive or absent items fail with ObjectNotFoundError("item").
	GetActiveItem(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// AddSideDish persists a new side dish.
	AddSideDish(ctx context.Context, aggregate *menu.SideDish) error

	// GetActiveSideDish retrieves a side dish that is currently orderable.
	// Inactive or absent dishes fail with ObjectNotFoundError("side_dish").
	GetActiveSideDish(ctx context.Context, id kernel.UUID) (*menu.SideDish, error)
}
