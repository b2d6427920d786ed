package commands_test

import (
	"testing"
	"time"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/domain/model/product"
	"dragontea/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

const testChatID int64 = 123456789

func fixedClock() time.Time {
	// Noon, comfortably inside any service window under test.
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), testChatID, "Aziz", "aziz_t")
	require.NoError(t, err)
	require.NoError(t, c.SetLanguage(customer.LanguageRussian))
	return c
}

func newTestProduct(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()

	p, err := product.NewProduct(id, nil, "Молочный чай", "Sutli choy",
		16000, 19000, true, true, true, true, 400, 600)
	require.NoError(t, err)
	return p
}

func newTestLine(t *testing.T, customerID kernel.UUID, productID kernel.UUID, quantity int) *cart.CartLine {
	t.Helper()

	variant, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)
	line, err := cart.RestoreCartLine(kernel.NewUUID(), customerID, productID, variant, quantity, 1)
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	variant, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)
	item, err := order.NewItem("Молочный чай", "Sutli choy", 16000, 1, variant, 400)
	require.NoError(t, err)

	location, err := kernel.NewLocation(41.2995, 69.2401)
	require.NoError(t, err)

	placed, err := order.RestoreOrder(kernel.NewUUID(), customerID, []order.Item{item},
		7600, location.String(), location, nil, status, 1, fixedClock().Add(-time.Hour))
	require.NoError(t, err)
	return placed
}

func openAllDayWindow(t *testing.T) services.ServiceWindow {
	t.Helper()

	w, err := services.NewServiceWindow("00:00", "23:59")
	require.NoError(t, err)
	return w
}

func storeCalculator(t *testing.T) services.DeliveryCalculator {
	t.Helper()

	store, err := kernel.NewLocation(41.314652, 69.240562)
	require.NoError(t, err)
	calc, err := services.NewDeliveryCalculator(store, 3800)
	require.NoError(t, err)
	return calc
}
