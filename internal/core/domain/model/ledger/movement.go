package ledger

import (
	"errors"
	"fmt"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/pkg/errs"
)

// ErrMovementIsNotConstructed is returned when a Movement instance was not
// created through NewMovement or RestoreMovement.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement or RestoreMovement")

// Movement is one immutable ledger record. Once written it is never updated
// or deleted; corrections are new movements.
type Movement struct {
	id          kernel.UUID
	orderID     *kernel.UUID
	kind        Kind
	amount      kernel.Money
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewMovement creates a ledger movement with validation. The amount must be
// strictly positive; orderID is nil for movements not tied to an order
// (manual payouts, standalone credit).
func NewMovement(
	id kernel.UUID,
	orderID *kernel.UUID,
	kind Kind,
	amount kernel.Money,
	description string,
	now time.Time,
) (*Movement, error) {
	m := &Movement{
		description:   description,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setKind(kind),
		m.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMovement reconstructs a movement from persistence.
func RestoreMovement(
	id kernel.UUID,
	orderID *kernel.UUID,
	kind Kind,
	amount kernel.Money,
	description string,
	createdAt time.Time,
) (*Movement, error) {
	return NewMovement(id, orderID, kind, amount, description, createdAt)
}

// Validate ensures the Movement was created through a constructor.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// OrderID returns the linked order's identifier, or nil.
func (m *Movement) OrderID() *kernel.UUID {
	return m.orderID
}

// Kind returns the movement kind.
func (m *Movement) Kind() Kind {
	return m.kind
}

// Amount returns the positive movement amount.
func (m *Movement) Amount() kernel.Money {
	return m.amount
}

// Description returns the free-text description.
func (m *Movement) Description() string {
	return m.description
}

// CreatedAt returns the movement timestamp.
func (m *Movement) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Movement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movement) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	m.orderID = orderID
	return nil
}

func (m *Movement) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Movement) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	m.amount = amount
	return nil
}
