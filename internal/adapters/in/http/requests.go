package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound requests.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request validator used by the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct-tag validation on a bound request.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Cep           string `json:"cep"`
	Street        string `json:"street" validate:"required"`
	Number        string `json:"number" validate:"required"`
	Neighborhood  string `json:"neighborhood" validate:"required"`
	Complement    string `json:"complement"`
	ItemID        string `json:"item_id" validate:"required,uuid"`
	SideDishID    string `json:"side_dish_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Notes         string `json:"notes"`
}

// UpdateOrderStatusRequest is the body of PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddMovementRequest is the body of POST /api/register/movements.
type AddMovementRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=entry exit credit"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
	OrderID     string `json:"order_id" validate:"omitempty,uuid"`
}

// CreateMenuItemRequest is the body of POST /api/menu.
type CreateMenuItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
}

// UpdateMenuItemRequest is the body of PUT /api/menu/:id.
type UpdateMenuItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active" validate:"required"`
}
