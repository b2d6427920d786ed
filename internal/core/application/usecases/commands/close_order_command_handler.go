package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/ports"
)

// CloseOrderCommandHandler advances an order toward the archive.
// The first close marks the order completed, the second close archives it.
//
// The status change commits first; only then does the messaging happen. The
// customer hears about the first close, when the order actually arrives.
// Archiving an already completed order is staff bookkeeping and only the
// staff group sees it.
type CloseOrderCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	notifier   ports.CustomerNotifier
	staff      ports.StaffChannel
}

// NewCloseOrderCommandHandler creates a handler for closing orders.
// Requires a unit of work factory plus the customer and staff messaging ports.
func NewCloseOrderCommandHandler(
	uowFactory OrderCustomerUoWFactory,
	notifier ports.CustomerNotifier,
	staff ports.StaffChannel,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		staff:      staff,
	}
}

// Handle processes the close command.
// Returns an error wrapping order.ErrInvalidStatusTransition when the order
// cannot be closed from its current status; the order is left untouched.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	placed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = placed.Close(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, placed); err != nil {
		return err
	}

	aggregate, err := uow.CustomerRepository().Get(ctx, placed.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if placed.Status() == order.Completed {
		return errors.Join(
			h.notifier.NotifyOrderCompleted(ctx, aggregate, placed),
			h.staff.PostOrderUpdate(ctx, placed),
		)
	}

	return h.staff.PostOrderUpdate(ctx, placed)
}
