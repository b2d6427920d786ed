package commands

import (
	"context"
)

// SetCustomerLanguageCommandHandler stores the customer's language choice.
type SetCustomerLanguageCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSetCustomerLanguageCommandHandler creates a handler for language selection.
// Requires a CustomerUoWFactory for transactional persistence.
func NewSetCustomerLanguageCommandHandler(uowFactory CustomerUoWFactory) SetCustomerLanguageCommandHandler {
	return SetCustomerLanguageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the language selection command.
// The customer must already be registered.
func (h *SetCustomerLanguageCommandHandler) Handle(ctx context.Context, cmd SetCustomerLanguageCommand) error {
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

	if err = aggregate.SetLanguage(cmd.Language()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
