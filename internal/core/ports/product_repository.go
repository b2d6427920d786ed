package ports

import (
	"context"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the catalog.
// The ordering core never writes products; the catalog is maintained
// separately.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products for the given identifiers.
	// Used at checkout to price a whole cart in one round trip.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAllCategories retrieves all catalog categories.
	GetAllCategories(ctx context.Context) ([]*product.Category, error)

	// GetByCategory retrieves the products in the given category.
	GetByCategory(ctx context.Context, categoryID kernel.UUID) ([]*product.Product, error)
}
