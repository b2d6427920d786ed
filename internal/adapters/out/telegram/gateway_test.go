package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken             = "123:test-token"
	testStaffChatID int64 = -1001234567890
)

// capturedCall records one Bot API request the stub server received.
type capturedCall struct {
	method  string
	payload map[string]any
}

// newStubAPI starts a Bot API stub that records calls and answers every
// method with the given result object.
func newStubAPI(t *testing.T, result any) (*Gateway, *[]capturedCall) {
	t.Helper()

	calls := &[]capturedCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		*calls = append(*calls, capturedCall{
			method:  r.URL.Path,
			payload: payload,
		})

		raw, err := json.Marshal(result)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"ok":true,"result":` + string(raw) + `}`))
	}))
	t.Cleanup(server.Close)

	client := NewClientWithBaseURL(testToken, server.URL)
	return NewGateway(client, testStaffChatID, "provider-token"), calls
}

func newRussianCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), 123456789, "Aziz", "aziz_t")
	require.NoError(t, err)
	require.NoError(t, c.SetLanguage(customer.LanguageRussian))
	return c
}

func newPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	variant, err := kernel.NewVariant(kernel.SizeSmall, kernel.TemperatureHot)
	require.NoError(t, err)
	item, err := order.NewItem("Молочный чай", "Sutli choy", 16000, 2, variant, 400)
	require.NoError(t, err)
	location, err := kernel.NewLocation(41.2995, 69.2401)
	require.NoError(t, err)
	placed, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item},
		7600, location.String(), location, time.Now())
	require.NoError(t, err)
	return placed
}

func TestGateway_SendInvoice(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{})
	aggregate := newRussianCustomer(t)
	placed := newPendingOrder(t, aggregate.ID())

	err := gateway.SendInvoice(t.Context(), aggregate, placed)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/bot"+testToken+"/sendInvoice", call.method)
	assert.Equal(t, "UZS", call.payload["currency"])
	assert.Equal(t, "order_"+placed.ID().String(), call.payload["payload"])

	// Amounts are in the currency's smallest units.
	prices := call.payload["prices"].([]any)
	require.Len(t, prices, 2)
	items := prices[0].(map[string]any)
	delivery := prices[1].(map[string]any)
	assert.InDelta(t, float64(32000*100), items["amount"], 0)
	assert.InDelta(t, float64(7600*100), delivery["amount"], 0)
}

func TestGateway_PromptCourierData_ReturnsMessageID(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{"message_id": 42})
	placed := newPendingOrder(t, kernel.NewUUID())

	messageID, err := gateway.PromptCourierData(t.Context(), 987654321, placed)

	require.NoError(t, err)
	assert.Equal(t, 42, messageID)
	require.Len(t, *calls, 1)
	assert.InDelta(t, float64(987654321), (*calls)[0].payload["chat_id"], 0)
}

func TestGateway_PostNewOrder_TargetsStaffChat(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{"message_id": 7})
	aggregate := newRussianCustomer(t)
	require.NoError(t, aggregate.SetPhone("+998901234567"))
	placed := newPendingOrder(t, aggregate.ID())

	err := gateway.PostNewOrder(t.Context(), placed, aggregate)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.InDelta(t, float64(testStaffChatID), call.payload["chat_id"], 0)
	text := call.payload["text"].(string)
	assert.Contains(t, text, "+998901234567")
	assert.Contains(t, text, "Молочный чай")
	assert.Contains(t, text, "39600") // items total plus delivery
}

func TestGateway_NotifyCourierAssigned_UzbekCustomer(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{"message_id": 7})
	aggregate := newRussianCustomer(t)
	require.NoError(t, aggregate.SetLanguage(customer.LanguageUzbek))

	courier, err := order.NewCourier("Бахтиёр", "01A777BB", "Cobalt")
	require.NoError(t, err)

	err = gateway.NotifyCourierAssigned(t.Context(), aggregate, courier)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	text := (*calls)[0].payload["text"].(string)
	assert.Contains(t, text, "Kuryer")
	assert.Contains(t, text, "Бахтиёр")
}

func TestGateway_NotifyOrderCompleted(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{"message_id": 7})
	aggregate := newRussianCustomer(t)
	placed := newPendingOrder(t, aggregate.ID())

	err := gateway.NotifyOrderCompleted(t.Context(), aggregate, placed)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.InDelta(t, float64(aggregate.ChatID()), call.payload["chat_id"], 0)
	text := call.payload["text"].(string)
	assert.Contains(t, text, "доставлен")
	assert.Contains(t, text, "39600")
}

func TestGateway_PostOrderUpdate_IncludesStatusAndCourier(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{"message_id": 7})
	placed := newPendingOrder(t, kernel.NewUUID())
	require.NoError(t, placed.ConfirmPayment())

	courier, err := order.NewCourier("Бахтиёр", "01A777BB", "Cobalt")
	require.NoError(t, err)
	require.NoError(t, placed.AssignCourier(courier))

	err = gateway.PostOrderUpdate(t.Context(), placed)

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.InDelta(t, float64(testStaffChatID), call.payload["chat_id"], 0)
	text := call.payload["text"].(string)
	assert.Contains(t, text, placed.ID().String())
	assert.Contains(t, text, placed.Status().String())
	assert.Contains(t, text, "Бахтиёр")
}

func TestGateway_AnswerCallback(t *testing.T) {
	gateway, calls := newStubAPI(t, map[string]any{})

	err := gateway.AnswerCallback(t.Context(), "cb-9", "устарело")

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/bot"+testToken+"/answerCallbackQuery", call.method)
	assert.Equal(t, "cb-9", call.payload["callback_query_id"])
	assert.Equal(t, "устарело", call.payload["text"])
}

func TestGateway_APIErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClientWithBaseURL(testToken, server.URL)
	gateway := NewGateway(client, testStaffChatID, "provider-token")
	aggregate := newRussianCustomer(t)
	placed := newPendingOrder(t, aggregate.ID())

	err := gateway.NotifyPaymentAccepted(t.Context(), aggregate, placed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestOrderIDFromInvoicePayload(t *testing.T) {
	id, ok := OrderIDFromInvoicePayload("order_550e8400-e29b-41d4-a716-446655440000")
	require.True(t, ok)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id)

	_, ok = OrderIDFromInvoicePayload("something-else")
	assert.False(t, ok)
}
