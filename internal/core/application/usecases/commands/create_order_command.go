package commands

import (
	"errors"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/order"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order: who is
// ordering, where it goes, what dish and side, and how it will be paid.
//
// Required fields are validated in the constructor, each producing its own
// ValueIsRequiredError naming the offending field. Referential checks
// (does the item exist, is it active) belong to the handler, which runs
// them inside the transaction.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	phone         string
	cep           string
	street        string
	number        string
	neighborhood  string
	complement    string
	menuItemID    kernel.UUID
	sideDishID    kernel.UUID
	paymentMethod order.PaymentMethod
	notes         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order request.
// Cep, complement and notes are optional; everything else is required.
func NewCreateOrderCommand(
	customerName string,
	phone string,
	cep string,
	street string,
	number string,
	neighborhood string,
	complement string,
	menuItemID kernel.UUID,
	sideDishID kernel.UUID,
	paymentMethod order.PaymentMethod,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		cep:        cep,
		complement: complement,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
		cmd.setStreet(street),
		cmd.setNumber(number),
		cmd.setNeighborhood(neighborhood),
		cmd.setMenuItemID(menuItemID),
		cmd.setSideDishID(sideDishID),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name given with this order. Only used when the
// phone is seen for the first time; repeat customers keep their first name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the customer's phone, the lookup key for resolution.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Cep returns the optional postal code.
func (c CreateOrderCommand) Cep() string {
	return c.cep
}

// Street returns the delivery street.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// Number returns the delivery street number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// Neighborhood returns the delivery neighborhood, the delivery-fee input.
func (c CreateOrderCommand) Neighborhood() string {
	return c.neighborhood
}

// Complement returns the optional address complement.
func (c CreateOrderCommand) Complement() string {
	return c.complement
}

// MenuItemID returns the ordered menu item's identifier.
func (c CreateOrderCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// SideDishID returns the chosen side dish's identifier.
func (c CreateOrderCommand) SideDishID() kernel.UUID {
	return c.sideDishID
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns optional free-text notes for the kitchen.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	c.street = street
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setNeighborhood(neighborhood string) error {
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	c.neighborhood = neighborhood
	return nil
}

func (c *CreateOrderCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("item_id")
	}
	c.menuItemID = id
	return nil
}

func (c *CreateOrderCommand) setSideDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("side_dish_id")
	}
	c.sideDishID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return errs.NewValueIsRequiredError("payment_method")
	}
	c.paymentMethod = method
	return nil
}
