package commands

import (
	"errors"
	"fmt"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/pkg/errs"
	"burgercounter/internal/pkg/guard"
)

var ErrAddLedgerMovementCommandIsNotConstructed = errors.New(
	"AddLedgerMovementCommand must be created via NewAddLedgerMovementCommand constructor",
)

// AddLedgerMovementCommand represents a manual cash-register movement:
// a payout, a standalone sale, or credit extended to a regular.
// Order-linked entries are written by the order-creation flow, not here,
// but a manual movement may still reference an order.
type AddLedgerMovementCommand struct { //nolint:recvcheck //using for validation
	kind        ledger.Kind
	amount      kernel.Money
	description string
	orderID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddLedgerMovementCommand creates a validated movement request.
// Kind must be one of entry/exit/credit and amount strictly positive.
func NewAddLedgerMovementCommand(
	kind ledger.Kind,
	amount kernel.Money,
	description string,
	orderID *kernel.UUID,
) (AddLedgerMovementCommand, error) {
	cmd := AddLedgerMovementCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setAmount(amount),
		cmd.setOrderID(orderID),
	); err != nil {
		return AddLedgerMovementCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLedgerMovementCommand) Validate() error {
	return c.guard.Validate(ErrAddLedgerMovementCommandIsNotConstructed)
}

// Kind returns the movement kind.
func (c AddLedgerMovementCommand) Kind() ledger.Kind {
	return c.kind
}

// Amount returns the positive movement amount.
func (c AddLedgerMovementCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the free-text description.
func (c AddLedgerMovementCommand) Description() string {
	return c.description
}

// OrderID returns the optional linked order's identifier.
func (c AddLedgerMovementCommand) OrderID() *kernel.UUID {
	return c.orderID
}

func (c *AddLedgerMovementCommand) setKind(kind ledger.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *AddLedgerMovementCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	c.amount = amount
	return nil
}

func (c *AddLedgerMovementCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
