// Package ledgerrepo provides data transfer objects and mapping functions
// for the append-only cash ledger.
package ledgerrepo

import (
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementDTO represents the database structure for persisting ledger
// movements. OrderID is nullable: manual movements need no order.
type MovementDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     *uuid.UUID      `gorm:"type:uuid;index"`
	Kind        string          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Description string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger movements.
func (MovementDTO) TableName() string {
	return "ledger_movements"
}

func fromDomain(aggregate *ledger.Movement) MovementDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return MovementDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     orderID,
		Kind:        aggregate.Kind().String(),
		Amount:      aggregate.Amount().Decimal(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto MovementDTO) (*ledger.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		linked, linkErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		orderID = &linked
	}

	kind, err := ledger.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreMovement(id, orderID, kind, amount, dto.Description, dto.CreatedAt)
}
