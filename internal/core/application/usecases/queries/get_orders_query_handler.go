package queries

import (
	"context"

	"burgercounter/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order history from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders matching the query's filters, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := orderSelect + ` WHERE 1 = 1`
	args := make([]any, 0, 3)

	if query.Status() != order.Unknown {
		sql += ` AND o.status = ?`
		args = append(args, query.Status().String())
	}
	if !query.DateFrom().IsZero() {
		sql += ` AND o.created_at >= ?`
		args = append(args, query.DateFrom())
	}
	if !query.DateTo().IsZero() {
		sql += ` AND o.created_at <= ?`
		args = append(args, query.DateTo())
	}
	sql += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
