package commands

import (
	"context"
)

// ClearCartCommandHandler empties the customer's cart.
type ClearCartCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
// Requires a ShoppingUoWFactory for transactional persistence.
func NewClearCartCommandHandler(uowFactory ShoppingUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart clearing command.
// Clearing an already empty cart succeeds.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CustomerRepository().GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	if err = uow.CartRepository().Clear(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
