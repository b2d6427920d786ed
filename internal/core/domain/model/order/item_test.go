package order_test

import (
	"testing"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	hot, err := kernel.NewVariant(kernel.SizeBig, kernel.TemperatureHot)
	require.NoError(t, err)

	t.Run("creates priced snapshot", func(t *testing.T) {
		item, err := order.NewItem("Молочный чай", "Sutli choy", 19000, 2, hot, 600)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 19000, item.UnitPrice())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 600, item.Volume())
		assert.Equal(t, 38000, item.Total())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewItem("Молочный чай", "Sutli choy", 19000, 0, hot, 600)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.NewItem("Молочный чай", "Sutli choy", -1, 1, hot, 600)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects missing titles", func(t *testing.T) {
		_, err := order.NewItem("", "Sutli choy", 19000, 1, hot, 600)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value item is invalid", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_Title(t *testing.T) {
	item, err := order.NewItem("Молочный чай", "Sutli choy", 19000, 1, kernel.Variant{}, 0)
	require.NoError(t, err)

	assert.Equal(t, "Молочный чай", item.Title(customer.LanguageRussian))
	assert.Equal(t, "Sutli choy", item.Title(customer.LanguageUzbek))
	assert.Equal(t, "Молочный чай", item.Title(customer.LanguageNone))
}
