package ports

import (
	"context"

	"burgercounter/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Phone is the unique business key; the store enforces a uniqueness
// constraint on it.
type CustomerRepository interface {
	// Add persists a new customer. A concurrent insert of the same phone
	// fails with a ConflictError; the caller retries as a lookup.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByPhone retrieves a customer by exact phone match, or an
	// ObjectNotFoundError when no customer has ordered from that phone.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
