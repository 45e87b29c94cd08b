package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler edits a menu item in place. Price changes do
// not touch existing orders: they carry their own price snapshots.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu-item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, applies the edits and persists the result.
// Deactivated items can be edited too, so the lookup ignores the active flag.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = item.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	item.ChangeDescription(cmd.Description())

	if cmd.Active() {
		item.Activate()
	} else {
		item.Deactivate()
	}

	if err = menuRepo.UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
