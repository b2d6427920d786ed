package commands

import (
	"context"
)

// SetCustomerPhoneCommandHandler stores the customer's shared phone number.
type SetCustomerPhoneCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSetCustomerPhoneCommandHandler creates a handler for phone capture.
// Requires a CustomerUoWFactory for transactional persistence.
func NewSetCustomerPhoneCommandHandler(uowFactory CustomerUoWFactory) SetCustomerPhoneCommandHandler {
	return SetCustomerPhoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the phone capture command.
// The customer must already be registered.
func (h *SetCustomerPhoneCommandHandler) Handle(ctx context.Context, cmd SetCustomerPhoneCommand) error {
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

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPhone(cmd.Phone()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
