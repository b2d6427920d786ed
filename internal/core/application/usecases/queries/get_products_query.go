package queries

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the products of one menu category, with the
// option flags and per-size prices the product screen needs.
type GetProductsQuery struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the products of the given category.
func NewGetProductsQuery(categoryID kernel.UUID) (GetProductsQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// CategoryID returns the category whose products are requested.
func (q GetProductsQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

// GetProductsQueryResponse represents one product on the menu screen.
// Prices are in minor currency units; a zero price means the size is not
// offered.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	TitleRU     string
	TitleUZ     string
	SmallPrice  int
	BigPrice    int
	HasSmall    bool
	HasBig      bool
	HasHot      bool
	HasCold     bool
	SmallVolume int
	BigVolume   int
}
