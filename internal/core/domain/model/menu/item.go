package menu

import (
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a dish on the menu. Orders reference items by ID and snapshot the
// price at order time, so editing an item never rewrites past orders.
//
// Invariants:
//   - valid unique identifier
//   - non-empty name
//   - strictly positive price
type Item struct {
	id          kernel.UUID
	name        string
	price       kernel.Money
	description string
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewItem creates an active menu item with validation.
func NewItem(id kernel.UUID, name string, price kernel.Money, description string, now time.Time) (*Item, error) {
	item := &Item{
		description:   description,
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence, including its active flag.
func RestoreItem(
	id kernel.UUID,
	name string,
	price kernel.Money,
	description string,
	active bool,
	createdAt time.Time,
) (*Item, error) {
	item, err := NewItem(id, name, price, description, createdAt)
	if err != nil {
		return nil, err
	}

	item.active = active
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current menu price. Orders snapshot this value.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Description returns the free-text description.
func (i *Item) Description() string {
	return i.description
}

// IsActive reports whether the item can be ordered.
func (i *Item) IsActive() bool {
	return i.active
}

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// Rename changes the display name.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// ChangePrice sets a new menu price. Existing orders keep their snapshots.
func (i *Item) ChangePrice(price kernel.Money) error {
	return i.setPrice(price)
}

// ChangeDescription replaces the free-text description.
func (i *Item) ChangeDescription(description string) {
	i.description = description
}

// Deactivate soft-deletes the item: it disappears from the menu but stays
// referencable by historical orders.
func (i *Item) Deactivate() {
	i.active = false
}

// Activate puts the item back on the menu.
func (i *Item) Activate() {
	i.active = true
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	i.price = price
	return nil
}
