package postgres

import (
	"context"
	"time"

	"burgercounter/internal/adapters/out/postgres/menurepo"
	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

type seedItem struct {
	name        string
	price       string
	description string
}

type seedSideDish struct {
	name string
	icon string
}

var seedItems = []seedItem{
	{"X-Burger Clássico", "15.00", "Hambúrguer, queijo, alface, tomate"},
	{"X-Bacon", "18.00", "Hambúrguer, bacon, queijo, alface, tomate"},
	{"X-Tudo", "22.00", "Hambúrguer, bacon, queijo, ovo, alface, tomate"},
	{"X-Frango", "16.00", "Frango grelhado, queijo, alface, tomate"},
	{"X-Calabresa", "17.00", "Calabresa, queijo, cebola, alface, tomate"},
	{"Misto Quente", "8.00", "Presunto e queijo no pão de forma"},
	{"Bauru", "12.00", "Presunto, queijo, tomate, orégano"},
	{"Hot Dog Simples", "10.00", "Salsicha, molho, batata palha"},
	{"Hot Dog Especial", "14.00", "Salsicha, queijo, bacon, molho, batata palha"},
}

var seedSideDishes = []seedSideDish{
	{"Fritas", "🍟"},
	{"Legumes", "🥦"},
	{"Purê", "🥔"},
	{"Salada Verde", "🥒"},
}

// noopTracker satisfies the repositories' tracker dependency outside a unit
// of work; the seed has no post-commit processing.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// Seed populates the catalog with the counter's starting menu. A no-op when
// the menu already has items, so restarts never duplicate the catalog.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&menurepo.MenuItemDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := menurepo.NewGormMenuRepository(tx, noopTracker{})

		for _, s := range seedItems {
			price, err := kernel.MoneyFromString(s.price)
			if err != nil {
				return err
			}
			item, err := menu.NewItem(kernel.NewUUID(), s.name, price, s.description, now)
			if err != nil {
				return err
			}
			if err = repo.AddItem(ctx, item); err != nil {
				return err
			}
		}

		for _, s := range seedSideDishes {
			dish, err := menu.NewSideDish(kernel.NewUUID(), s.name, s.icon)
			if err != nil {
				return err
			}
			if err = repo.AddSideDish(ctx, dish); err != nil {
				return err
			}
		}

		return nil
	})
}
