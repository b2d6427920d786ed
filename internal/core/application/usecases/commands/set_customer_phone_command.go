package commands

import (
	"errors"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrSetCustomerPhoneCommandIsNotConstructed = errors.New(
		"SetCustomerPhoneCommand must be created via NewSetCustomerPhoneCommand constructor",
	)
)

// SetCustomerPhoneCommand represents a request to store the phone number the
// customer shared through the contact button.
type SetCustomerPhoneCommand struct { //nolint:recvcheck //using for validation
	chatID int64
	phone  string

	guard guard.ConstructorGuard
}

// NewSetCustomerPhoneCommand creates a command to record a shared phone number.
func NewSetCustomerPhoneCommand(chatID int64, phone string) (SetCustomerPhoneCommand, error) {
	command := SetCustomerPhoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChatID(chatID),
		command.setPhone(phone),
	); err != nil {
		return SetCustomerPhoneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerPhoneCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerPhoneCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c SetCustomerPhoneCommand) ChatID() int64 {
	return c.chatID
}

// Phone returns the shared phone number.
func (c SetCustomerPhoneCommand) Phone() string {
	return c.phone
}

func (c *SetCustomerPhoneCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}

func (c *SetCustomerPhoneCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
