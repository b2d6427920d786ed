package ports

import (
	"context"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart line aggregates.
//
// The cart is keyed: at most one line exists per (customer, product, variant)
// combination, and the storage layer enforces that with a unique constraint.
type CartRepository interface {
	// Add persists a new cart line.
	// Fails if a line with the same (customer, product, variant) key exists.
	Add(ctx context.Context, aggregate *cart.CartLine) error

	// Update persists changes to an existing cart line using its version for
	// optimistic concurrency. Returns an error wrapping
	// errs.ErrConcurrentModification when another actor changed the line first.
	Update(ctx context.Context, aggregate *cart.CartLine) error

	// GetLine retrieves the cart line for an exact (customer, product, variant)
	// key. Returns an error wrapping errs.ErrObjectNotFound when the customer
	// has no such line; callers then create one.
	GetLine(ctx context.Context, customerID kernel.UUID, productID kernel.UUID, variant kernel.Variant) (*cart.CartLine, error)

	// GetLineForProduct retrieves any cart line the customer holds for the
	// given product, regardless of variant. Variant selection overwrites the
	// existing line instead of adding a second one, and this lookup finds the
	// line to overwrite. Returns an error wrapping errs.ErrObjectNotFound when
	// the customer has no line for the product.
	GetLineForProduct(ctx context.Context, customerID kernel.UUID, productID kernel.UUID) (*cart.CartLine, error)

	// GetActiveLines retrieves the customer's lines with a positive quantity,
	// the ones that take part in checkout.
	GetActiveLines(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error)

	// Clear removes all of the customer's cart lines.
	Clear(ctx context.Context, customerID kernel.UUID) error
}
