package http

import (
	"time"

	"burgercounter/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerResponse is the customer slice of an order body.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ItemResponse is the menu-item slice of an order body.
type ItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SideDishResponse is the side-dish slice of an order body.
type SideDishResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AddressResponse is the delivery address of an order body.
type AddressResponse struct {
	Cep          string `json:"cep,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement,omitempty"`
}

// OrderResponse is a fully hydrated order body. Money fields are decimal
// strings with two places, never floats.
type OrderResponse struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"payment_method"`
	Customer      CustomerResponse `json:"customer"`
	Item          ItemResponse     `json:"item"`
	SideDish      SideDishResponse `json:"side_dish"`
	Address       AddressResponse  `json:"address"`
	ItemPrice     string           `json:"item_price"`
	DeliveryFee   string           `json:"delivery_fee"`
	Total         string           `json:"total"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func orderToResponse(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            o.ID.String(),
		Status:        o.Status.String(),
		PaymentMethod: o.PaymentMethod.String(),
		Customer: CustomerResponse{
			ID:    o.Customer.ID.String(),
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
		},
		Item: ItemResponse{
			ID:   o.Item.ID.String(),
			Name: o.Item.Name,
		},
		SideDish: SideDishResponse{
			ID:   o.SideDish.ID.String(),
			Name: o.SideDish.Name,
			Icon: o.SideDish.Icon,
		},
		Address: AddressResponse{
			Cep:          o.Address.Cep,
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Neighborhood: o.Address.Neighborhood,
			Complement:   o.Address.Complement,
		},
		ItemPrice:   o.ItemPrice.String(),
		DeliveryFee: o.DeliveryFee.String(),
		Total:       o.Total.String(),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func ordersToResponse(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = orderToResponse(o)
	}
	return out
}

// MenuItemResponse is one orderable menu item.
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// MovementResponse is one ledger movement in a report body.
type MovementResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id,omitempty"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportResponse is the cash-register report body.
type ReportResponse struct {
	Entries       string             `json:"entries"`
	Exits         string             `json:"exits"`
	Credits       string             `json:"credits"`
	Balance       string             `json:"balance"`
	OrderCount    int64              `json:"order_count"`
	AverageTicket string             `json:"average_ticket"`
	Movements     []MovementResponse `json:"movements"`
}

func reportToResponse(r queries.GetRegisterReportQueryResponse) ReportResponse {
	movements := make([]MovementResponse, len(r.Movements))
	for i, m := range r.Movements {
		movements[i] = MovementResponse{
			ID:          m.ID.String(),
			Kind:        m.Kind.String(),
			Amount:      m.Amount.String(),
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		}
		if m.OrderID != nil {
			movements[i].OrderID = m.OrderID.String()
		}
	}

	return ReportResponse{
		Entries:       r.Entries.String(),
		Exits:         r.Exits.String(),
		Credits:       r.Credits.String(),
		Balance:       r.Balance.String(),
		OrderCount:    r.OrderCount,
		AverageTicket: r.AverageTicket.String(),
		Movements:     movements,
	}
}

// DashboardResponse is the counter's at-a-glance body.
type DashboardResponse struct {
	TodaySales         string `json:"today_sales"`
	TodayOrderCount    int64  `json:"today_order_count"`
	TodayAverageTicket string `json:"today_average_ticket"`
	OutstandingCredit  string `json:"outstanding_credit"`
}

// IDResponse carries the identifier of a freshly created resource.
type IDResponse struct {
	ID string `json:"id"`
}
