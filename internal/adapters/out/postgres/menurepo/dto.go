// Package menurepo provides data transfer objects and mapping functions for
// the menu catalog: items and side dishes. Deactivated records stay in the
// store so historical orders keep resolving.
package menurepo

import (
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Description string
	Active      bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// SideDishDTO represents the database structure for persisting side dishes.
type SideDishDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Icon   string
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for side dishes.
func (SideDishDTO) TableName() string {
	return "side_dishes"
}

func itemFromDomain(aggregate *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Price:       aggregate.Price().Decimal(),
		Description: aggregate.Description(),
		Active:      aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func itemToDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, price, dto.Description, dto.Active, dto.CreatedAt)
}

func sideDishFromDomain(aggregate *menu.SideDish) SideDishDTO {
	return SideDishDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Icon:   aggregate.Icon(),
		Active: aggregate.IsActive(),
	}
}

func sideDishToDomain(dto SideDishDTO) (*menu.SideDish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreSideDish(id, dto.Name, dto.Icon, dto.Active)
}
