package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
)

// ChangeQuantityCommandHandler adjusts the quantity of a cart line.
//
// A missing line is created on the fly so the plus button works directly from
// the product screen. The quantity floors at zero; a line at zero stays in
// the cart but is skipped by checkout.
type ChangeQuantityCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

// NewChangeQuantityCommandHandler creates a handler for quantity adjustments.
// Requires a ShoppingUoWFactory for transactional persistence.
func NewChangeQuantityCommandHandler(uowFactory ShoppingUoWFactory) ChangeQuantityCommandHandler {
	return ChangeQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity adjustment command.
func (h *ChangeQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeQuantityCommand) error {
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

	cartRepo := uow.CartRepository()

	line, err := cartRepo.GetLine(ctx, aggregate.ID(), cmd.ProductID(), cmd.Variant())
	created := false
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		if _, err = uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
			return err
		}
		line, err = cart.NewCartLine(kernel.NewUUID(), aggregate.ID(), cmd.ProductID(), cmd.Variant())
		if err != nil {
			return err
		}
		created = true
	default:
		return err
	}

	quantity := line.Quantity() + cmd.Delta()
	if quantity < 0 {
		quantity = 0
	}
	if err = line.SetQuantity(quantity); err != nil {
		return err
	}

	if created {
		err = cartRepo.Add(ctx, line)
	} else {
		err = cartRepo.Update(ctx, line)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
