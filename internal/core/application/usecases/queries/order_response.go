// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Query handlers bypass the domain model and read
// the database directly, returning fully hydrated response structs.
package queries

import (
	"database/sql"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCustomerResponse is the customer slice of a hydrated order.
type OrderCustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// OrderItemResponse is the menu-item slice of a hydrated order.
type OrderItemResponse struct {
	ID   kernel.UUID
	Name string
}

// OrderSideDishResponse is the side-dish slice of a hydrated order.
type OrderSideDishResponse struct {
	ID   kernel.UUID
	Name string
	Icon string
}

// OrderAddressResponse is the delivery address of a hydrated order.
type OrderAddressResponse struct {
	Cep          string
	Street       string
	Number       string
	Neighborhood string
	Complement   string
}

// OrderResponse represents a fully hydrated order: the customer, the ordered
// item and side dish, the delivery address and the price snapshots, assembled
// in one read so callers never chase references.
type OrderResponse struct {
	ID            kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Customer      OrderCustomerResponse
	Item          OrderItemResponse
	SideDish      OrderSideDishResponse
	Address       OrderAddressResponse
	ItemPrice     kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// orderSelect is the shared projection for hydrated orders. Every order query
// joins the same four tables and scans the same columns; only the WHERE and
// ORDER BY differ.
const orderSelect = `
	SELECT
		o.id,
		o.status,
		o.payment_method,
		o.item_price,
		o.delivery_fee,
		o.total,
		o.notes,
		o.created_at,
		o.updated_at,
		o.address_cep,
		o.address_street,
		o.address_number,
		o.address_neighborhood,
		o.address_complement,
		c.id,
		c.name,
		c.phone,
		m.id,
		m.name,
		s.id,
		s.name,
		s.icon
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN menu_items m ON m.id = o.menu_item_id
	JOIN side_dishes s ON s.id = o.side_dish_id
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var orderID, customerID, itemID, sideDishID uuid.UUID
	var status, paymentMethod string
	var itemPrice, deliveryFee, total decimal.Decimal

	err := rows.Scan(
		&orderID,
		&status,
		&paymentMethod,
		&itemPrice,
		&deliveryFee,
		&total,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Address.Cep,
		&resp.Address.Street,
		&resp.Address.Number,
		&resp.Address.Neighborhood,
		&resp.Address.Complement,
		&customerID,
		&resp.Customer.Name,
		&resp.Customer.Phone,
		&itemID,
		&resp.Item.Name,
		&sideDishID,
		&resp.SideDish.Name,
		&resp.SideDish.Icon,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.Customer.ID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.Item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.SideDish.ID, err = kernel.UUIDFromBytes(sideDishID[:]); err != nil {
		return OrderResponse{}, err
	}

	if resp.Status, err = order.ParseStatus(status); err != nil {
		return OrderResponse{}, err
	}
	if resp.PaymentMethod, err = order.ParsePaymentMethod(paymentMethod); err != nil {
		return OrderResponse{}, err
	}

	if resp.ItemPrice, err = kernel.NewMoney(itemPrice); err != nil {
		return OrderResponse{}, err
	}
	if resp.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
		return OrderResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
