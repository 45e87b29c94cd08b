package commands

import (
	"errors"
	"fmt"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a full edit of a menu item: name, price,
// description and the active flag. Setting active to false soft-deletes the
// dish; past orders keep pointing at it.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       kernel.Money
	description string
	active      bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a validated menu-item update request.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	price kernel.Money,
	description string,
	active bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: description,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the target item's identifier.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the new menu price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the new free-text description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Active reports whether the item should remain orderable.
func (c UpdateMenuItemCommand) Active() bool {
	return c.active
}

func (c *UpdateMenuItemCommand) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("item_id")
	}
	c.itemID = id
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	c.price = price
	return nil
}
