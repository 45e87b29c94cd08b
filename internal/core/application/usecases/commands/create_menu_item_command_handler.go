package commands

import (
	"context"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler puts a new dish on the menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu-item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the item and returns its new identifier.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	item, err := menu.NewItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().AddItem(ctx, item); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return item.ID(), nil
}
