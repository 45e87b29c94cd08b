package queries

import (
	"context"

	"burgercounter/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler reads the kitchen work queue from the
// database. Orders leave the queue when they move to OutForDelivery.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen queue queries.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle returns Accepted and Preparing orders, oldest first.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderSelect+`
		WHERE o.status IN (?, ?)
		ORDER BY o.created_at ASC
	`, order.Accepted.String(), order.Preparing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
