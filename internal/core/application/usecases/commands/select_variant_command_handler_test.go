package commands_test

import (
	"testing"

	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSelectVariantCommandHandler_Handle_OverwritesExistingLine(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestCustomer(t)
	productID := kernel.NewUUID()
	p := newTestProduct(t, productID)
	line := newTestLine(t, aggregate.ID(), productID, 2) // small hot

	bigCold, err := kernel.NewVariant(kernel.SizeBig, kernel.TemperatureCold)
	require.NoError(t, err)

	cmd, err := commands.NewSelectVariantCommand(testChatID, productID, bigCold)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(p, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineForProduct", ctx, aggregate.ID(), productID).Return(line, nil).Once(),
		cartRepo.On("Update", ctx, line).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShoppingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSelectVariantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, bigCold, line.Variant())
	// The quantity survives a reconfiguration.
	assert.Equal(t, 2, line.Quantity())
	uow.AssertExpectations(t)
}

func TestSelectVariantCommandHandler_Handle_CreatesNewLine(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestCustomer(t)
	productID := kernel.NewUUID()
	p := newTestProduct(t, productID)

	smallHot, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)

	cmd, err := commands.NewSelectVariantCommand(testChatID, productID, smallHot)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(p, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineForProduct", ctx, aggregate.ID(), productID).
			Return(nil, errs.NewObjectNotFoundError("cartLine", productID)).Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.CartLine")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShoppingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSelectVariantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := cartRepo.Calls[1].Arguments[1].(*cart.CartLine)
	assert.True(t, added.Matches(productID, smallHot))
	assert.Equal(t, 0, added.Quantity())
	assert.False(t, added.IsActive())
	uow.AssertExpectations(t)
}

func TestSelectVariantCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestCustomer(t)
	productID := kernel.NewUUID()

	smallHot, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)

	cmd, err := commands.NewSelectVariantCommand(testChatID, productID, smallHot)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("GetByChatID", ctx, testChatID).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShoppingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSelectVariantCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSelectVariantCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SelectVariantCommand{} // not constructed properly

	factory := new(MockShoppingUoWFactory)
	handler := commands.NewSelectVariantCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrSelectVariantCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
