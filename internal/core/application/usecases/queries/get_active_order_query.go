package queries

import (
	"errors"
	"time"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrGetActiveOrderQueryIsNotConstructed = errors.New(
		"GetActiveOrderQuery must be created via NewGetActiveOrderQuery constructor",
	)
)

// GetActiveOrderQuery retrieves the customer's latest order that is being
// prepared or delivered. It drives the "your order" status affordance in
// the bot.
type GetActiveOrderQuery struct {
	chatID int64

	guard guard.ConstructorGuard
}

// NewGetActiveOrderQuery creates a query for the active order of the
// customer behind the given chat id.
func NewGetActiveOrderQuery(chatID int64) (GetActiveOrderQuery, error) {
	if chatID == 0 {
		return GetActiveOrderQuery{}, errs.NewValueIsRequiredError("chatID")
	}

	return GetActiveOrderQuery{
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrderQueryIsNotConstructed if validation fails.
func (q GetActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrderQueryIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (q GetActiveOrderQuery) ChatID() int64 {
	return q.chatID
}

// GetActiveOrderQueryResponse represents the customer's in-flight order.
// Courier fields are empty until staff hand the order over.
type GetActiveOrderQueryResponse struct {
	ID          kernel.UUID
	Status      string
	TotalPrice  int
	Address     string
	CourierName string
	CourierCar  string
	CreatedAt   time.Time
}
