package queries

import (
	"context"

	"burgercounter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single hydrated order from the database.
// The HTTP layer uses it both for GET /api/orders/:id and to return the
// full order right after creation.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or an ObjectNotFoundError when no order has
// the requested ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSelect+` WHERE o.id = ?`, query.OrderID().Bytes(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	return scanOrderRow(rows)
}
