package commands_test

import (
	"errors"
	"testing"

	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle_CreatesUnknownCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCustomerCommand(testChatID, "Aziz", "aziz_t")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).
			Return(nil, errs.NewObjectNotFoundError("chatID", testChatID)).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := customerRepo.Calls[1].Arguments[1].(*customer.Customer)
	require.Equal(t, testChatID, added.ChatID())
	require.Equal(t, "Aziz", added.Name())
	require.False(t, added.HasLanguage())

	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_KnownCustomerIsUntouched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCustomerCommand(testChatID, "Aziz", "aziz_t")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).Return(newTestCustomer(t), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	customerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterCustomerCommand{} // not constructed properly

	factory := new(MockCustomerUoWFactory)
	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterCustomerCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCustomerCommand(testChatID, "Aziz", "aziz_t")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
