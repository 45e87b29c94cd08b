package commands

import (
	"context"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
)

// AddLedgerMovementCommandHandler appends a manual movement to the ledger.
// A pure insert: the ledger is append-only, so there is nothing to check
// beyond what the command and the Movement constructor already validated.
type AddLedgerMovementCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewAddLedgerMovementCommandHandler creates a handler for manual movements.
func NewAddLedgerMovementCommandHandler(uowFactory LedgerUoWFactory) AddLedgerMovementCommandHandler {
	return AddLedgerMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the movement and returns its new identifier.
func (h *AddLedgerMovementCommandHandler) Handle(ctx context.Context, cmd AddLedgerMovementCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	movement, err := ledger.NewMovement(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.Kind(),
		cmd.Amount(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LedgerRepository().Add(ctx, movement); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return movement.ID(), nil
}
