package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/ports"
)

// ConfirmPaymentCommandHandler moves a paid order into preparation.
//
// The status change commits first; only then are the customer and the staff
// group notified. A duplicate payment callback finds the order already
// in_progress and fails the transition without touching it.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	notifier   ports.CustomerNotifier
	staff      ports.StaffChannel
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
// Requires a unit of work factory plus the customer and staff messaging ports.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderCustomerUoWFactory,
	notifier ports.CustomerNotifier,
	staff ports.StaffChannel,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		staff:      staff,
	}
}

// Handle processes the payment confirmation command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if err = placed.ConfirmPayment(); err != nil {
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

	return errors.Join(
		h.notifier.NotifyPaymentAccepted(ctx, aggregate, placed),
		h.staff.PostNewOrder(ctx, placed, aggregate),
	)
}
