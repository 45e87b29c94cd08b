package order

import (
	"errors"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is the delivery destination, a value object owned by a single
// order. It carries the delivery fee computed from the neighborhood at order
// time; the fee is part of the order's price snapshot.
type Address struct {
	cep          string
	street       string
	number       string
	neighborhood string
	complement   string
	deliveryFee  kernel.Money

	guard guard.ConstructorGuard
}

// NewAddress creates a delivery address with validation.
// Cep and complement are optional; street, number and neighborhood are not.
func NewAddress(cep, street, number, neighborhood, complement string, deliveryFee kernel.Money) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if number == "" {
		return Address{}, errs.NewValueIsRequiredError("number")
	}
	if neighborhood == "" {
		return Address{}, errs.NewValueIsRequiredError("neighborhood")
	}
	if !deliveryFee.IsPositive() {
		return Address{}, errs.NewValueIsInvalidError("delivery_fee")
	}

	return Address{
		cep:          cep,
		street:       street,
		number:       number,
		neighborhood: neighborhood,
		complement:   complement,
		deliveryFee:  deliveryFee,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Cep returns the postal code, possibly empty.
func (a Address) Cep() string {
	return a.cep
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Neighborhood returns the neighborhood the delivery fee was derived from.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// Complement returns extra address detail, possibly empty.
func (a Address) Complement() string {
	return a.complement
}

// DeliveryFee returns the fee snapshot for this destination.
func (a Address) DeliveryFee() kernel.Money {
	return a.deliveryFee
}
