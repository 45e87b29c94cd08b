package commands

import (
	"errors"
	"fmt"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to put a new dish on the menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       kernel.Money
	description string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a validated menu-item creation request.
func NewCreateMenuItemCommand(name string, price kernel.Money, description string) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Name returns the dish's display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the menu price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Description returns the free-text description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	c.price = price
	return nil
}
