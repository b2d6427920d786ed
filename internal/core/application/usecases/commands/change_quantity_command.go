package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrChangeQuantityCommandIsNotConstructed = errors.New(
		"ChangeQuantityCommand must be created via NewChangeQuantityCommand constructor",
	)
	ErrDeltaIsZero = errors.New("quantity delta must not be zero")
)

// ChangeQuantityCommand represents the customer pressing the plus or minus
// button on a cart line.
type ChangeQuantityCommand struct { //nolint:recvcheck //using for validation
	chatID    int64
	productID kernel.UUID
	variant   kernel.Variant
	delta     int

	guard guard.ConstructorGuard
}

// NewChangeQuantityCommand creates a command to adjust the quantity of the
// customer's cart line for the given product configuration.
// Delta is usually +1 or -1 and must not be zero.
func NewChangeQuantityCommand(
	chatID int64,
	productID kernel.UUID,
	variant kernel.Variant,
	delta int,
) (ChangeQuantityCommand, error) {
	command := ChangeQuantityCommand{
		variant: variant,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setChatID(chatID),
		command.setProductID(productID),
		command.setDelta(delta),
		variant.Validate(),
	); err != nil {
		return ChangeQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeQuantityCommandIsNotConstructed)
}

// ChatID returns the customer's messaging chat id.
func (c ChangeQuantityCommand) ChatID() int64 {
	return c.chatID
}

// ProductID returns the product whose line is being adjusted.
func (c ChangeQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Variant returns the line's size/temperature configuration.
func (c ChangeQuantityCommand) Variant() kernel.Variant {
	return c.variant
}

// Delta returns the signed quantity adjustment.
func (c ChangeQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeQuantityCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}
	c.chatID = chatID
	return nil
}

func (c *ChangeQuantityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *ChangeQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}
	c.delta = delta
	return nil
}
