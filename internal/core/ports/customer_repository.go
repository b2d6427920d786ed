// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, outbound messaging, and
// the pending courier-assignment store. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByChatID retrieves a customer aggregate by its messaging chat id.
	// Returns an error wrapping errs.ErrObjectNotFound when the chat id has
	// never been seen; the registration flow relies on that to decide
	// between creating and updating.
	GetByChatID(ctx context.Context, chatID int64) (*customer.Customer, error)
}
