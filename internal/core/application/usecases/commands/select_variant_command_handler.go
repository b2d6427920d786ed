package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
)

// SelectVariantCommandHandler records a variant choice on the customer's
// cart line for a product.
//
// Picking a variant never forks the cart: if the customer already has a line
// for the product, its configuration is overwritten in place, quantity and
// all. Only when the product is not in the cart yet does a fresh line appear.
type SelectVariantCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

// NewSelectVariantCommandHandler creates a handler for variant selection.
// Requires a ShoppingUoWFactory for transactional persistence.
func NewSelectVariantCommandHandler(uowFactory ShoppingUoWFactory) SelectVariantCommandHandler {
	return SelectVariantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the variant selection command.
// Validates the product exists before touching the cart.
func (h *SelectVariantCommandHandler) Handle(ctx context.Context, cmd SelectVariantCommand) error {
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

	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()

	line, err := cartRepo.GetLineForProduct(ctx, aggregate.ID(), cmd.ProductID())
	switch {
	case err == nil:
		if err = line.SetVariant(cmd.Variant()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, line); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		line, err = cart.NewCartLine(kernel.NewUUID(), aggregate.ID(), cmd.ProductID(), cmd.Variant())
		if err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, line); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
