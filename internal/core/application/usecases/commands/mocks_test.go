package commands_test

import (
	"context"
	"time"

	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/domain/model/product"
	"dragontea/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByChatID(ctx context.Context, chatID int64) (*customer.Customer, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, line *cart.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, line *cart.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) GetLine(
	ctx context.Context,
	customerID kernel.UUID,
	productID kernel.UUID,
	variant kernel.Variant,
) (*cart.CartLine, error) {
	args := m.Called(ctx, customerID, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) GetLineForProduct(
	ctx context.Context,
	customerID kernel.UUID,
	productID kernel.UUID,
) (*cart.CartLine, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) GetActiveLines(ctx context.Context, customerID kernel.UUID) ([]*cart.CartLine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllCategories(ctx context.Context) ([]*product.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Category), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) ([]*product.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLastByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package, so each
// test wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockShoppingUoWFactory struct{ mock.Mock }

func (m *MockShoppingUoWFactory) Create() commands.ShoppingUoW {
	args := m.Called()
	return args.Get(0).(commands.ShoppingUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCustomerUoWFactory struct{ mock.Mock }

func (m *MockOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCustomerUoW)
}

type MockCustomerNotifier struct{ mock.Mock }

func (m *MockCustomerNotifier) NotifyPaymentAccepted(
	ctx context.Context,
	c *customer.Customer,
	o *order.Order,
) error {
	args := m.Called(ctx, c, o)
	return args.Error(0)
}

func (m *MockCustomerNotifier) NotifyCourierAssigned(
	ctx context.Context,
	c *customer.Customer,
	courier order.Courier,
) error {
	args := m.Called(ctx, c, courier)
	return args.Error(0)
}

func (m *MockCustomerNotifier) NotifyOrderCompleted(
	ctx context.Context,
	c *customer.Customer,
	o *order.Order,
) error {
	args := m.Called(ctx, c, o)
	return args.Error(0)
}

type MockStaffChannel struct{ mock.Mock }

func (m *MockStaffChannel) PostNewOrder(ctx context.Context, o *order.Order, c *customer.Customer) error {
	args := m.Called(ctx, o, c)
	return args.Error(0)
}

func (m *MockStaffChannel) PromptCourierData(ctx context.Context, staffChatID int64, o *order.Order) (int, error) {
	args := m.Called(ctx, staffChatID, o)
	return args.Int(0), args.Error(1)
}

func (m *MockStaffChannel) PostOrderUpdate(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockInvoiceSender struct{ mock.Mock }

func (m *MockInvoiceSender) SendInvoice(ctx context.Context, c *customer.Customer, o *order.Order) error {
	args := m.Called(ctx, c, o)
	return args.Error(0)
}

type MockPendingAssignmentStore struct{ mock.Mock }

func (m *MockPendingAssignmentStore) Put(ctx context.Context, staffID int64, a ports.PendingAssignment) error {
	args := m.Called(ctx, staffID, a)
	return args.Error(0)
}

func (m *MockPendingAssignmentStore) Get(ctx context.Context, staffID int64) (ports.PendingAssignment, error) {
	args := m.Called(ctx, staffID)
	return args.Get(0).(ports.PendingAssignment), args.Error(1)
}

func (m *MockPendingAssignmentStore) Delete(ctx context.Context, staffID int64) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}
