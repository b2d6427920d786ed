package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/domain/services"
	"dragontea/internal/core/ports"
	"dragontea/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStaffChatID int64 = -1001234567890

const testCustomerChatID int64 = 123456789

// approvedRecorder records pre-checkout approvals.
type approvedRecorder struct {
	queryIDs []string
}

func (r *approvedRecorder) ApprovePreCheckout(_ context.Context, queryID string) error {
	r.queryIDs = append(r.queryIDs, queryID)
	return nil
}

// messengerRecorder records feedback sent back through the messenger.
type messengerRecorder struct {
	texts   map[int64][]string
	answers []string
}

func (m *messengerRecorder) SendText(_ context.Context, chatID int64, text string) error {
	if m.texts == nil {
		m.texts = make(map[int64][]string)
	}
	m.texts[chatID] = append(m.texts[chatID], text)
	return nil
}

func (m *messengerRecorder) AnswerCallback(_ context.Context, _ string, text string) error {
	m.answers = append(m.answers, text)
	return nil
}

func newTestServer(handlers Handlers, preCheckout PreCheckoutAnswerer, messenger Messenger) *WebhookServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parsePayload := func(payload string) (string, bool) {
		return strings.CutPrefix(payload, "order_")
	}
	return NewWebhookServer(handlers, preCheckout, messenger, parsePayload, testStaffChatID, logger)
}

func postUpdate(t *testing.T, server *WebhookServer, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, server.HandleUpdate(e.NewContext(req, rec)))
	return rec
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), testCustomerChatID, "Aziz", "aziz_t")
	require.NoError(t, err)
	require.NoError(t, c.SetLanguage(customer.LanguageRussian))
	return c
}

func newPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	variant, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)
	item, err := order.NewItem("Молочный чай", "Sutli choy", 16000, 1, variant, 400)
	require.NoError(t, err)
	location, err := kernel.NewLocation(41.2995, 69.2401)
	require.NoError(t, err)

	placed, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item},
		7600, location.String(), location, time.Now())
	require.NoError(t, err)
	return placed
}

// Stub ports for driving real command handlers through the webhook. Methods
// the exercised path never reaches return zero values.

type stubPendingStore struct {
	assignment ports.PendingAssignment
}

func (s stubPendingStore) Put(context.Context, int64, ports.PendingAssignment) error { return nil }

func (s stubPendingStore) Get(context.Context, int64) (ports.PendingAssignment, error) {
	return s.assignment, nil
}

func (s stubPendingStore) Delete(context.Context, int64) error { return nil }

type stubCustomerRepo struct {
	aggregate *customer.Customer
}

func (r stubCustomerRepo) Add(context.Context, *customer.Customer) error    { return nil }
func (r stubCustomerRepo) Update(context.Context, *customer.Customer) error { return nil }

func (r stubCustomerRepo) Get(context.Context, kernel.UUID) (*customer.Customer, error) {
	return r.aggregate, nil
}

func (r stubCustomerRepo) GetByChatID(context.Context, int64) (*customer.Customer, error) {
	return r.aggregate, nil
}

type stubEmptyCartRepo struct{}

func (stubEmptyCartRepo) Add(context.Context, *cart.CartLine) error    { return nil }
func (stubEmptyCartRepo) Update(context.Context, *cart.CartLine) error { return nil }

func (stubEmptyCartRepo) GetLine(
	context.Context, kernel.UUID, kernel.UUID, kernel.Variant,
) (*cart.CartLine, error) {
	return nil, nil
}

func (stubEmptyCartRepo) GetLineForProduct(
	context.Context, kernel.UUID, kernel.UUID,
) (*cart.CartLine, error) {
	return nil, nil
}

func (stubEmptyCartRepo) GetActiveLines(context.Context, kernel.UUID) ([]*cart.CartLine, error) {
	return []*cart.CartLine{}, nil
}

func (stubEmptyCartRepo) Clear(context.Context, kernel.UUID) error { return nil }

type stubOrderRepo struct {
	placed *order.Order
}

func (r stubOrderRepo) Add(context.Context, *order.Order) error    { return nil }
func (r stubOrderRepo) Update(context.Context, *order.Order) error { return nil }

func (r stubOrderRepo) Get(context.Context, kernel.UUID) (*order.Order, error) {
	return r.placed, nil
}

func (r stubOrderRepo) GetLastByCustomer(context.Context, kernel.UUID, int) ([]*order.Order, error) {
	return nil, nil
}

func (r stubOrderRepo) GetAllStalePending(context.Context, time.Time) ([]*order.Order, error) {
	return nil, nil
}

// stubUoW is a transactionless unit of work over the stub repositories.
type stubUoW struct {
	aggregate *customer.Customer
	placed    *order.Order
}

func (u stubUoW) Begin(context.Context) error    { return nil }
func (u stubUoW) Commit(context.Context) error   { return nil }
func (u stubUoW) Rollback(context.Context) error { return nil }

func (u stubUoW) CustomerRepository() ports.CustomerRepository {
	return stubCustomerRepo{aggregate: u.aggregate}
}

func (u stubUoW) CartRepository() ports.CartRepository { return stubEmptyCartRepo{} }

func (u stubUoW) ProductRepository() ports.ProductRepository { return nil }

func (u stubUoW) OrderRepository() ports.OrderRepository {
	return stubOrderRepo{placed: u.placed}
}

type stubCheckoutUoWFactory struct {
	uow stubUoW
}

func (f stubCheckoutUoWFactory) Create() commands.CheckoutUoW { return f.uow }

type stubOrderCustomerUoWFactory struct {
	uow stubUoW
}

func (f stubOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW { return f.uow }

func TestWebhookServer_AnswersPreCheckoutQuery(t *testing.T) {
	recorder := &approvedRecorder{}
	server := newTestServer(Handlers{}, recorder, &messengerRecorder{})

	rec := postUpdate(t, server, `{
		"update_id": 1,
		"pre_checkout_query": {
			"id": "query-77",
			"from": {"id": 123456789, "first_name": "Aziz"},
			"currency": "UZS",
			"total_amount": 3960000,
			"invoice_payload": "order_550e8400-e29b-41d4-a716-446655440000"
		}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"query-77"}, recorder.queryIDs)
}

func TestWebhookServer_IgnoresUnhandledUpdates(t *testing.T) {
	recorder := &approvedRecorder{}
	server := newTestServer(Handlers{}, recorder, &messengerRecorder{})

	// Plain text in a customer chat drives nothing; the conversation runs
	// on buttons.
	rec := postUpdate(t, server, `{
		"update_id": 2,
		"message": {
			"message_id": 10,
			"from": {"id": 123456789, "first_name": "Aziz"},
			"chat": {"id": 123456789, "type": "private"},
			"text": "hello"
		}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, recorder.queryIDs)
}

func TestWebhookServer_MalformedBodyStillAnswers200(t *testing.T) {
	server := newTestServer(Handlers{}, &approvedRecorder{}, &messengerRecorder{})

	rec := postUpdate(t, server, `{not json`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookServer_RepromptsOnMalformedCourierReply(t *testing.T) {
	pending := stubPendingStore{assignment: ports.PendingAssignment{
		OrderID:         kernel.NewUUID(),
		PromptMessageID: 42,
	}}
	handlers := Handlers{
		SubmitCourierData: commands.NewSubmitCourierDataCommandHandler(nil, pending, nil, nil),
	}
	messenger := &messengerRecorder{}
	server := newTestServer(handlers, &approvedRecorder{}, messenger)

	// Missing the car model field, so the reply does not parse.
	rec := postUpdate(t, server, fmt.Sprintf(`{
		"update_id": 3,
		"message": {
			"message_id": 100,
			"from": {"id": 987654321, "first_name": "Staff"},
			"chat": {"id": %d, "type": "supergroup"},
			"text": "Бахтиёр, 01A777BB",
			"reply_to_message": {"message_id": 42, "chat": {"id": %d, "type": "supergroup"}}
		}
	}`, testStaffChatID, testStaffChatID))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, messenger.texts[testStaffChatID], 1)
	assert.Contains(t, messenger.texts[testStaffChatID][0], "имя, номер машины, модель машины")
}

func TestWebhookServer_ReportsEmptyCartAtCheckout(t *testing.T) {
	window, err := services.NewServiceWindow("00:00", "23:59")
	require.NoError(t, err)
	store, err := kernel.NewLocation(41.314652, 69.240562)
	require.NoError(t, err)
	calculator, err := services.NewDeliveryCalculator(store, 3800)
	require.NoError(t, err)
	noonClock := func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	factory := stubCheckoutUoWFactory{uow: stubUoW{aggregate: newTestCustomer(t)}}
	handlers := Handlers{
		Checkout: commands.NewCheckoutCommandHandler(factory, window, calculator, nil, noonClock),
	}
	messenger := &messengerRecorder{}
	server := newTestServer(handlers, &approvedRecorder{}, messenger)

	rec := postUpdate(t, server, fmt.Sprintf(`{
		"update_id": 4,
		"message": {
			"message_id": 11,
			"from": {"id": %d, "first_name": "Aziz"},
			"chat": {"id": %d, "type": "private"},
			"location": {"latitude": 41.2995, "longitude": 69.2401}
		}
	}`, testCustomerChatID, testCustomerChatID))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, messenger.texts[testCustomerChatID], 1)
	assert.Contains(t, messenger.texts[testCustomerChatID][0], "Корзина пуста")
	assert.Contains(t, messenger.texts[testCustomerChatID][0], "Savat bo'sh")
}

func TestWebhookServer_AnswersStaleOrderButton(t *testing.T) {
	// A pending order cannot be closed; the button card is out of date.
	placed := newPendingOrder(t, kernel.NewUUID())
	factory := stubOrderCustomerUoWFactory{uow: stubUoW{placed: placed}}
	handlers := Handlers{
		CloseOrder: commands.NewCloseOrderCommandHandler(factory, nil, nil),
	}
	messenger := &messengerRecorder{}
	server := newTestServer(handlers, &approvedRecorder{}, messenger)

	rec := postUpdate(t, server, fmt.Sprintf(`{
		"update_id": 5,
		"callback_query": {
			"id": "cb-9",
			"from": {"id": 987654321, "first_name": "Staff"},
			"message": {"message_id": 77, "chat": {"id": %d, "type": "supergroup"}},
			"data": "close_%s"
		}
	}`, testStaffChatID, placed.ID()))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, messenger.answers, 1)
	assert.Contains(t, messenger.answers[0], "Статус заказа уже изменился")
	assert.Equal(t, order.Pending, placed.Status())
}

func TestParseVariantCallback(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid data", func(t *testing.T) {
		id, variant, err := parseVariantCallback(productID.String() + "_big_cold")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(productID))
		assert.Equal(t, kernel.SizeBig, variant.Size())
		assert.Equal(t, kernel.TemperatureCold, variant.Temperature())
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, _, err := parseVariantCallback(productID.String() + "_big")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("bad product id", func(t *testing.T) {
		_, _, err := parseVariantCallback("not-a-uuid_big_cold")

		require.Error(t, err)
	})

	t.Run("bad size", func(t *testing.T) {
		_, _, err := parseVariantCallback(productID.String() + "_grande_cold")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestIsBusinessRejection(t *testing.T) {
	assert.True(t, isBusinessRejection(errs.NewObjectNotFoundError("order", "x")))
	assert.True(t, isBusinessRejection(commands.ErrCartIsEmpty))
	assert.True(t, isBusinessRejection(commands.ErrNoPendingAssignment))
	assert.True(t, isBusinessRejection(order.ErrInvalidStatusTransition))
	assert.True(t, isBusinessRejection(order.ErrCourierDataIsMalformed))
	assert.False(t, isBusinessRejection(assert.AnError))
}
