package queries

import (
	"errors"
	"time"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// historyLimit caps the order history view at the most recent orders.
const historyLimit = 4

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the customer's most recent orders,
// newest first.
type GetCustomerOrdersQuery struct {
	chatID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the order history of the
// customer behind the given chat id.
func NewGetCustomerOrdersQuery(chatID int64) (GetCustomerOrdersQuery, error) {
	if chatID == 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("chatID")
	}

	return GetCustomerOrdersQuery{
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (q GetCustomerOrdersQuery) ChatID() int64 {
	return q.chatID
}

// GetCustomerOrdersQueryResponse represents one order in the customer's
// history view.
type GetCustomerOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	DeliveryCost int
	TotalPrice   int
	Address      string
	CreatedAt    time.Time
}
