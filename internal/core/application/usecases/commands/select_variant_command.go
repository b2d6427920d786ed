package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrSelectVariantCommandIsNotConstructed = errors.New(
		"SelectVariantCommand must be created via NewSelectVariantCommand constructor",
	)
)

// SelectVariantCommand represents the customer picking a size or temperature
// for a product on the product screen.
type SelectVariantCommand struct { //nolint:recvcheck //using for validation
	chatID    int64
	productID kernel.UUID
	variant   kernel.Variant

	guard guard.ConstructorGuard
}

// NewSelectVariantCommand creates a command to record a variant choice for a
// product in the customer's cart.
func NewSelectVariantCommand(chatID int64, productID kernel.UUID, variant kernel.Variant) (SelectVariantCommand, error) {
	command := SelectVariantCommand{
		variant: variant,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChatID(chatID),
		command.setProductID(productID),
		variant.Validate(),
	); err != nil {
		return SelectVariantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectVariantCommand) Validate() error {
	return c.guard.Validate(ErrSelectVariantCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c SelectVariantCommand) ChatID() int64 {
	return c.chatID
}

// ProductID returns the product the variant was picked for.
func (c SelectVariantCommand) ProductID() kernel.UUID {
	return c.productID
}

// Variant returns the picked size/temperature configuration.
func (c SelectVariantCommand) Variant() kernel.Variant {
	return c.variant
}

func (c *SelectVariantCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}

func (c *SelectVariantCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
