package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/customer"
	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/core/domain/model/order"
	"burgercounter/internal/core/domain/services"
	"burgercounter/internal/core/ports"
	"burgercounter/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the order-creation flow, the one
// operation in the system that spans several aggregates:
//
//  1. load the active menu item and side dish
//  2. resolve the customer by phone (create on first order)
//  3. compute the delivery fee from the neighborhood
//  4. persist the order with its price snapshots
//  5. append the ledger entry for the order total
//
// All five steps run in a single unit of work. Any failure rolls the whole
// thing back: there is never an order without its ledger entry, nor a
// ledger entry without its order.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	pricing    services.DeliveryPricing
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, pricing services.DeliveryPricing) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command and returns the new order's ID.
// Callers hydrate the full order through the order queries after commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.GetActiveItem(ctx, cmd.MenuItemID())
	if err != nil {
		return kernel.UUID{}, err
	}

	sideDish, err := menuRepo.GetActiveSideDish(ctx, cmd.SideDishID())
	if err != nil {
		return kernel.UUID{}, err
	}

	orderCustomer, err := h.resolveCustomer(ctx, uow.CustomerRepository(), cmd, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	fee := h.pricing.FeeFor(cmd.Neighborhood())
	address, err := order.NewAddress(
		cmd.Cep(), cmd.Street(), cmd.Number(), cmd.Neighborhood(), cmd.Complement(), fee,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderCustomer.ID(),
		item.ID(),
		sideDish.ID(),
		address,
		cmd.PaymentMethod(),
		item.Price(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	orderID := newOrder.ID()
	movement, err := ledger.NewMovement(
		kernel.NewUUID(),
		&orderID,
		ledger.Entry,
		newOrder.Total(),
		fmt.Sprintf("Order #%s - %s", orderID, item.Name()),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.LedgerRepository().Add(ctx, movement); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}

// resolveCustomer looks the customer up by phone and creates the record on a
// first order. The existing record wins as-is: a different name on a repeat
// order does not overwrite the first-seen name.
//
// A concurrent first order from the same phone makes Add fail against the
// uniqueness constraint with a ConflictError. That aborts the transaction;
// the caller retries the whole request and resolves to the winner's record.
func (h *CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	cmd CreateOrderCommand,
	now time.Time,
) (*customer.Customer, error) {
	existing, err := repo.GetByPhone(ctx, cmd.Phone())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	fresh, err := customer.NewCustomer(kernel.NewUUID(), cmd.CustomerName(), cmd.Phone(), now)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, fresh); err != nil {
		return nil, err
	}

	return fresh, nil
}
