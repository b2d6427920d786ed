package commands

import (
	"errors"
	"time"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a sweep request for orders that sat
// unpaid longer than the given time to live.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a sweep command with the given unpaid
// time to live. The ttl must be positive.
func NewCancelStaleOrdersCommand(ttl time.Duration) (CancelStaleOrdersCommand, error) {
	command := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTTL(ttl); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay unpaid before the sweep cancels it.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CancelStaleOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsRequiredError("ttl")
	}
	c.ttl = ttl
	return nil
}
