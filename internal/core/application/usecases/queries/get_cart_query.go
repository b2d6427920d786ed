package queries

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the customer's active cart lines with per-line and
// cart totals, priced from the catalog.
//
// Example:
//
//	query, err := NewGetCartQuery(chatID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("%d positions, total %d\n", len(view.Lines), view.Total)
type GetCartQuery struct {
	chatID int64

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the cart of the customer behind the
// given chat id.
func NewGetCartQuery(chatID int64) (GetCartQuery, error) {
	if chatID == 0 {
		return GetCartQuery{}, errs.NewValueIsRequiredError("chatID")
	}

	return GetCartQuery{
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (q GetCartQuery) ChatID() int64 {
	return q.chatID
}

// GetCartQueryResponse is the customer's cart view: the active lines plus
// the cart total in minor currency units, before delivery.
type GetCartQueryResponse struct {
	Lines []CartLineView
	Total int
}

// CartLineView represents one active cart line with its resolved unit price
// and line total.
type CartLineView struct {
	ProductID   kernel.UUID
	TitleRU     string
	TitleUZ     string
	Size        string
	Temperature string
	Quantity    int
	UnitPrice   int
	LineTotal   int
}
