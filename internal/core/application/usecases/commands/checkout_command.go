package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents the customer sharing a delivery location to
// place an order from their cart.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	chatID   int64
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order delivered to the
// given coordinates.
func NewCheckoutCommand(chatID int64, latitude float64, longitude float64) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return CheckoutCommand{}, err
	}
	command.location = location

	if err = command.setChatID(chatID); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c CheckoutCommand) ChatID() int64 {
	return c.chatID
}

// Location returns the shared delivery coordinates.
func (c CheckoutCommand) Location() kernel.Location {
	return c.location
}

func (c *CheckoutCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}
