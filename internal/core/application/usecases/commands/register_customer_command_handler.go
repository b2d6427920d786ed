package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles first-contact registration.
// Creates a customer profile for unknown chat ids and leaves known ones
// untouched, so repeated /start messages are harmless.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Looks the sender up by chat id and creates a fresh profile when the chat id
// has never been seen.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	_, err := customerRepo.GetByChatID(ctx, cmd.ChatID())
	if err == nil {
		return uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := customer.NewCustomer(kernel.NewUUID(), cmd.ChatID(), cmd.Name(), cmd.Username())
	if err != nil {
		return err
	}

	if err = customerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
