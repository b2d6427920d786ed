package commands

import (
	"errors"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
)

// RegisterCustomerCommand represents a first-contact registration request.
// Issued for every /start so registration is idempotent: an already known
// chat id is left untouched.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	chatID   int64
	name     string
	username string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register the sender of an
// inbound message. Name and username come from the message and may be empty;
// the chat id must be non-zero.
func NewRegisterCustomerCommand(chatID int64, name string, username string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		name:     name,
		username: username,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCustomerCommandIsNotConstructed if validation fails.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// ChatID returns the sender's messaging chat id.
func (c RegisterCustomerCommand) ChatID() int64 {
	return c.chatID
}

// Name returns the sender's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Username returns the sender's messaging handle.
func (c RegisterCustomerCommand) Username() string {
	return c.username
}

func (c *RegisterCustomerCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}
