package order

import (
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTotalMismatch is returned when a restored order's stored total does
	// not equal its item price plus delivery fee.
	ErrTotalMismatch = errors.New("order total does not equal item price plus delivery fee")
)

// Order is the aggregate root for a customer order. It references the
// customer, the ordered menu item and side dish, owns its delivery address,
// and carries creation-time price snapshots.
//
// Invariants:
//   - total == itemPrice + deliveryFee, always
//   - itemPrice and deliveryFee are snapshots and never recomputed
//   - status only changes along the workflow state machine
//   - version increases by one on every status change; the persistence layer
//     uses it for optimistic concurrency control
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	menuItemID    kernel.UUID
	sideDishID    kernel.UUID
	address       Address
	status        Status
	paymentMethod PaymentMethod
	itemPrice     kernel.Money
	deliveryFee   kernel.Money
	total         kernel.Money
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	isConstructed bool
}

// NewOrder creates an order in Accepted status. The delivery fee is taken
// from the address and the total is computed here, which is the only place
// the pricing invariant is established.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	sideDishID kernel.UUID,
	address Address,
	paymentMethod PaymentMethod,
	itemPrice kernel.Money,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Accepted,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setMenuItemID(menuItemID),
		o.setSideDishID(sideDishID),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setItemPrice(itemPrice),
	); err != nil {
		return nil, err
	}

	o.deliveryFee = address.DeliveryFee()
	o.total = o.itemPrice.Add(o.deliveryFee)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status, price snapshots and version. The stored total is checked against
// the pricing invariant rather than recomputed, so a corrupted row surfaces
// as an error instead of silently changing money amounts.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	sideDishID kernel.UUID,
	address Address,
	status Status,
	paymentMethod PaymentMethod,
	itemPrice kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, menuItemID, sideDishID, address, paymentMethod, itemPrice, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if !itemPrice.Add(deliveryFee).IsEqual(total) {
		return nil, fmt.Errorf("%w: %s + %s != %s",
			ErrTotalMismatch, itemPrice.String(), deliveryFee.String(), total.String())
	}

	o.status = status
	o.deliveryFee = deliveryFee
	o.total = total
	o.updatedAt = updatedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MenuItemID returns the ordered menu item's identifier.
func (o *Order) MenuItemID() kernel.UUID {
	return o.menuItemID
}

// SideDishID returns the chosen side dish's identifier.
func (o *Order) SideDishID() kernel.UUID {
	return o.sideDishID
}

// Address returns the delivery address value object.
func (o *Order) Address() Address {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the order will be paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// ItemPrice returns the menu item price snapshot taken at creation.
func (o *Order) ItemPrice() kernel.Money {
	return o.itemPrice
}

// DeliveryFee returns the delivery fee snapshot taken at creation.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns the order total, always itemPrice + deliveryFee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Notes returns free-text notes for the kitchen, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last status-change timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus moves the order along the workflow state machine, bumping the
// updated timestamp and the version. Illegal transitions leave the order
// untouched and fail with an InvalidStatusTransitionError.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.menuItemID = id
	return nil
}

func (o *Order) setSideDishID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.sideDishID = id
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setItemPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"item_price",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	o.itemPrice = price
	return nil
}
