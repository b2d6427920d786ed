package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrSetCustomerLanguageCommandIsNotConstructed = errors.New(
		"SetCustomerLanguageCommand must be created via NewSetCustomerLanguageCommand constructor",
	)
)

// SetCustomerLanguageCommand represents a request to store the customer's
// language choice from the onboarding keyboard.
type SetCustomerLanguageCommand struct { //nolint:recvcheck //using for validation
	chatID   int64
	language customer.Language

	guard guard.ConstructorGuard
}

// NewSetCustomerLanguageCommand creates a command to record a language choice.
// The language must be an actual choice, not the unset value.
func NewSetCustomerLanguageCommand(chatID int64, language customer.Language) (SetCustomerLanguageCommand, error) {
	command := SetCustomerLanguageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChatID(chatID),
		command.setLanguage(language),
	); err != nil {
		return SetCustomerLanguageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerLanguageCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerLanguageCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c SetCustomerLanguageCommand) ChatID() int64 {
	return c.chatID
}

// Language returns the chosen language.
func (c SetCustomerLanguageCommand) Language() customer.Language {
	return c.language
}

func (c *SetCustomerLanguageCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}

func (c *SetCustomerLanguageCommand) setLanguage(language customer.Language) error {
	if language == customer.LanguageNone {
		return errs.NewValueIsRequiredError("language")
	}
	if err := language.Validate(); err != nil {
		return err
	}
	c.language = language
	return nil
}
