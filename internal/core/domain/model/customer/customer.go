// Package customer contains the customer entity. Customers are created
// lazily on their first order and looked up by phone number afterwards.
package customer

import (
	"errors"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer identifies who placed an order. Phone is the unique business key:
// the persistence layer enforces a uniqueness constraint on it, and repeat
// orders resolve to the existing record. The name stays whatever it was on
// the first order; later orders with a different name do not rewrite it.
type Customer struct {
	id        kernel.UUID
	name      string
	phone     string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer with validation.
func NewCustomer(id kernel.UUID, name, phone string, now time.Time) (*Customer, error) {
	c := &Customer{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone string, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, name, phone, createdAt)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the first-seen customer name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the unique phone number key.
func (c *Customer) Phone() string {
	return c.phone
}

// CreatedAt returns the first-order timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
