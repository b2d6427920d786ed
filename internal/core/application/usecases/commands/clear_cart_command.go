package commands

import (
	"errors"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand represents a request to empty the customer's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	chatID int64

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the sender's cart.
func NewClearCartCommand(chatID int64) (ClearCartCommand, error) {
	command := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return ClearCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c ClearCartCommand) ChatID() int64 {
	return c.chatID
}

func (c *ClearCartCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}
