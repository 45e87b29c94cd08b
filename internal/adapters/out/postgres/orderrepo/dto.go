// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order domain aggregate and its
// relational representation.
package orderrepo

import (
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and payment method are stored as their wire strings so that raw
// query handlers and humans reading the table see the same values the API
// serves. Money columns are exact numerics.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	MenuItemID    uuid.UUID  `gorm:"type:uuid"`
	SideDishID    uuid.UUID  `gorm:"type:uuid"`
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status        string     `gorm:"index"`
	PaymentMethod string
	ItemPrice     decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(10,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2)"`
	Notes         string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
	Version       int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the delivery address embedded within the order row.
type AddressDTO struct {
	Cep          string
	Street       string
	Number       string
	Neighborhood string
	Complement   string
}

func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		MenuItemID: aggregate.MenuItemID().Bytes(),
		SideDishID: aggregate.SideDishID().Bytes(),
		Address: AddressDTO{
			Cep:          address.Cep(),
			Street:       address.Street(),
			Number:       address.Number(),
			Neighborhood: address.Neighborhood(),
			Complement:   address.Complement(),
		},
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		ItemPrice:     aggregate.ItemPrice().Decimal(),
		DeliveryFee:   aggregate.DeliveryFee().Decimal(),
		Total:         aggregate.Total().Decimal(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	sideDishID, err := kernel.UUIDFromBytes(dto.SideDishID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	itemPrice, err := kernel.NewMoney(dto.ItemPrice)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Address.Cep,
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.Neighborhood,
		dto.Address.Complement,
		deliveryFee,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		menuItemID,
		sideDishID,
		address,
		status,
		paymentMethod,
		itemPrice,
		deliveryFee,
		total,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
