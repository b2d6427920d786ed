package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
)

// CloseOrderCommand represents a staff member pressing the close button on
// an order in the staff group.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to advance an order toward the
// archive.
func NewCloseOrderCommand(orderID kernel.UUID) (CloseOrderCommand, error) {
	command := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CloseOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the order being closed.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
