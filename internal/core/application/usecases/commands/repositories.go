// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"burgercounter/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the repositories it actually
// touches, which keeps handler mocks small.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// CreateOrderUoW manages the order-creation transaction: menu lookups,
	// customer resolution, the order insert and the ledger append all share
	// one transaction so they commit or roll back together.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		LedgerRepoFactory
		MenuRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderUoW manages transactions for order-only operations (status updates).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates unit of work instances for order-only operations.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LedgerUoW manages transactions for ledger-only operations.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates unit of work instances for ledger-only operations.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// MenuUoW manages transactions for catalog maintenance.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates unit of work instances for catalog maintenance.
	MenuUoWFactory interface {
		Create() MenuUoW
	}
)
