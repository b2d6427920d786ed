package ports

import (
	"context"
	"time"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using its version for
	// optimistic concurrency. Returns an error wrapping
	// errs.ErrConcurrentModification when another actor changed the order
	// first; callers reload and re-check the transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetLastByCustomer retrieves the customer's most recent orders,
	// newest first, up to the given limit.
	GetLastByCustomer(ctx context.Context, customerID kernel.UUID, limit int) ([]*order.Order, error)

	// GetAllStalePending retrieves pending orders created at or before the
	// given cutoff. Used by the sweep that cancels unpaid orders.
	GetAllStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
