package queries

import (
	"context"

	"burgercounter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSideDishesQueryHandler reads the active side dishes from the database.
type GetSideDishesQueryHandler struct {
	db *gorm.DB
}

// NewGetSideDishesQueryHandler creates a handler for side-dish queries.
func NewGetSideDishesQueryHandler(db *gorm.DB) GetSideDishesQueryHandler {
	return GetSideDishesQueryHandler{db: db}
}

// Handle returns all active side dishes, alphabetically.
func (h GetSideDishesQueryHandler) Handle(
	ctx context.Context,
	query GetSideDishesQuery,
) ([]GetSideDishesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes := make([]GetSideDishesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, icon
		FROM side_dishes
		WHERE active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSideDishesQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Icon)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		dishes = append(dishes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dishes, nil
}
