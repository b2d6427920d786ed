// Package queries contains the read side of the application: handlers that
// run raw SQL against the storage schema and return plain response structs
// for the presentation layer. Queries never load or mutate aggregates.
package queries

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/guard"
)

var (
	ErrGetCategoriesQueryIsNotConstructed = errors.New(
		"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
	)
)

// GetCategoriesQuery retrieves all menu categories with localized titles.
//
// Example:
//
//	query := NewGetCategoriesQuery()
//	handler := NewGetCategoriesQueryHandler(db)
//
//	categories, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get categories: %w", err)
//	}
type GetCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCategoriesQuery creates a query to retrieve the menu categories.
// This is a parameterless query.
func NewGetCategoriesQuery() GetCategoriesQuery {
	return GetCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCategoriesQueryIsNotConstructed if validation fails.
func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

// GetCategoriesQueryResponse represents one menu category with both
// localized titles; the presentation layer picks the one matching the
// customer's language.
type GetCategoriesQueryResponse struct {
	ID      kernel.UUID
	TitleRU string
	TitleUZ string
}
