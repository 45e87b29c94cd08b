package menurepo

import (
	"context"
	"errors"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"
	"burgercounter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddItem saves a new menu item to the database.
func (r *GormMenuRepository) AddItem(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateItem saves edits to an existing menu item. All editable columns are
// written explicitly so that deactivation (active = false) is not skipped as
// a zero value.
func (r *GormMenuRepository) UpdateItem(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "price", "description", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item_id", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetItem retrieves a menu item regardless of its active flag.
func (r *GormMenuRepository) GetItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item_id", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetActiveItem retrieves a menu item that is currently orderable.
// Deactivated items are treated as absent.
func (r *GormMenuRepository) GetActiveItem(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND active", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// AddSideDish saves a new side dish to the database.
func (r *GormMenuRepository) AddSideDish(ctx context.Context, aggregate *menu.SideDish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := sideDishFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveSideDish retrieves a side dish that is currently orderable.
// Deactivated dishes are treated as absent.
func (r *GormMenuRepository) GetActiveSideDish(ctx context.Context, id kernel.UUID) (*menu.SideDish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SideDishDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND active", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("side_dish", id.String())
		}
		return nil, err
	}

	return sideDishToDomain(dto)
}
