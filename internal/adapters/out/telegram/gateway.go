package telegram

import (
	"context"
	"fmt"
	"strings"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/order"
)

// invoiceCurrency is the only currency the store bills in.
const invoiceCurrency = "UZS"

// minorUnitFactor converts store prices (whole sums) into the currency's
// smallest units as the payments API expects.
const minorUnitFactor = 100

// invoicePayloadPrefix tags invoice payloads so the payment callback can
// recover the order id.
const invoicePayloadPrefix = "order_"

// Gateway implements the CustomerNotifier, StaffChannel and InvoiceSender
// ports over one bot. Customer messages are localized to the customer's
// language; the staff channel speaks Russian.
type Gateway struct {
	client        *Client
	staffChatID   int64
	providerToken string
}

// NewGateway creates a messaging gateway for the given bot client.
// staffChatID is the group where orders are worked; providerToken
// authenticates invoices with the payment provider.
func NewGateway(client *Client, staffChatID int64, providerToken string) *Gateway {
	return &Gateway{
		client:        client,
		staffChatID:   staffChatID,
		providerToken: providerToken,
	}
}

// NotifyPaymentAccepted tells the customer their payment went through.
func (g *Gateway) NotifyPaymentAccepted(
	ctx context.Context,
	aggregate *customer.Customer,
	placed *order.Order,
) error {
	var text string
	if aggregate.Language() == customer.LanguageUzbek {
		text = fmt.Sprintf("To'lov qabul qilindi! Buyurtmangiz tayyorlanmoqda.\nSumma: %d so'm", placed.TotalPrice())
	} else {
		text = fmt.Sprintf("Оплата принята! Ваш заказ готовится.\nСумма: %d сум", placed.TotalPrice())
	}

	_, err := g.client.sendMessage(ctx, aggregate.ChatID(), text)
	return err
}

// NotifyCourierAssigned sends the customer their courier's details.
func (g *Gateway) NotifyCourierAssigned(
	ctx context.Context,
	aggregate *customer.Customer,
	courier order.Courier,
) error {
	var text string
	if aggregate.Language() == customer.LanguageUzbek {
		text = fmt.Sprintf("Buyurtmangiz yo'lda!\nKuryer: %s\nMashina: %s %s",
			courier.Name(), courier.CarModel(), courier.CarNumber())
	} else {
		text = fmt.Sprintf("Ваш заказ в пути!\nКурьер: %s\nМашина: %s %s",
			courier.Name(), courier.CarModel(), courier.CarNumber())
	}

	_, err := g.client.sendMessage(ctx, aggregate.ChatID(), text)
	return err
}

// NotifyOrderCompleted tells the customer their order arrived.
func (g *Gateway) NotifyOrderCompleted(
	ctx context.Context,
	aggregate *customer.Customer,
	placed *order.Order,
) error {
	var text string
	if aggregate.Language() == customer.LanguageUzbek {
		text = fmt.Sprintf("Buyurtmangiz yetkazildi! Xaridingiz uchun rahmat.\nSumma: %d so'm", placed.TotalPrice())
	} else {
		text = fmt.Sprintf("Ваш заказ доставлен! Спасибо за покупку.\nСумма: %d сум", placed.TotalPrice())
	}

	_, err := g.client.sendMessage(ctx, aggregate.ChatID(), text)
	return err
}

// PostNewOrder announces a freshly paid order to the staff group.
func (g *Gateway) PostNewOrder(
	ctx context.Context,
	placed *order.Order,
	aggregate *customer.Customer,
) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Новый заказ %s\n", placed.ID())
	fmt.Fprintf(&b, "Клиент: %s", aggregate.Name())
	if aggregate.Phone() != "" {
		fmt.Fprintf(&b, ", %s", aggregate.Phone())
	}
	b.WriteString("\n\n")

	for _, item := range placed.Items() {
		fmt.Fprintf(&b, "%s (%s) x %d - %d\n",
			item.TitleRU(), item.Variant(), item.Quantity(), item.Total())
	}

	fmt.Fprintf(&b, "\nДоставка: %d\n", placed.DeliveryCost())
	fmt.Fprintf(&b, "Итого: %d\n", placed.TotalPrice())
	fmt.Fprintf(&b, "Адрес: %s", placed.Address())

	_, err := g.client.sendMessage(ctx, g.staffChatID, b.String())
	return err
}

// PromptCourierData asks a staff member to reply with courier details.
// Returns the prompt's message id; the reply must reference it.
func (g *Gateway) PromptCourierData(
	ctx context.Context,
	staffChatID int64,
	placed *order.Order,
) (int, error) {
	text := fmt.Sprintf(
		"Заказ %s\nОтветьте на это сообщение данными курьера:\nимя, номер машины, модель машины",
		placed.ID())

	return g.client.sendMessage(ctx, staffChatID, text)
}

// PostOrderUpdate posts the order's current status to the staff group.
func (g *Gateway) PostOrderUpdate(ctx context.Context, placed *order.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Заказ %s\n", placed.ID())
	fmt.Fprintf(&b, "Статус: %s", placed.Status())
	if courier := placed.Courier(); courier != nil {
		fmt.Fprintf(&b, "\nКурьер: %s", courier)
	}

	_, err := g.client.sendMessage(ctx, g.staffChatID, b.String())
	return err
}

// SendInvoice sends the customer a payment invoice itemized into the cart
// total and the delivery fee.
func (g *Gateway) SendInvoice(
	ctx context.Context,
	aggregate *customer.Customer,
	placed *order.Order,
) error {
	uz := aggregate.Language() == customer.LanguageUzbek

	title := "Dragon Tea"
	var b strings.Builder
	for _, item := range placed.Items() {
		fmt.Fprintf(&b, "%s x %d - %d\n", item.Title(aggregate.Language()), item.Quantity(), item.Total())
	}
	description := strings.TrimRight(b.String(), "\n")

	itemsLabel := "Заказ"
	deliveryLabel := "Доставка"
	if uz {
		itemsLabel = "Buyurtma"
		deliveryLabel = "Yetkazib berish"
	}

	prices := []labeledPrice{
		{Label: itemsLabel, Amount: placed.ItemsTotal() * minorUnitFactor},
		{Label: deliveryLabel, Amount: placed.DeliveryCost() * minorUnitFactor},
	}

	return g.client.sendInvoice(ctx, aggregate.ChatID(), title, description,
		invoicePayloadPrefix+placed.ID().String(), g.providerToken, invoiceCurrency, prices)
}

// ApprovePreCheckout accepts the payment at the final confirmation step.
// Telegram holds the payment until this answer arrives.
func (g *Gateway) ApprovePreCheckout(ctx context.Context, queryID string) error {
	return g.client.approvePreCheckoutQuery(ctx, queryID)
}

// SendText sends a plain text message to the given chat. The webhook uses it
// to report rejected actions back to whoever triggered them.
func (g *Gateway) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := g.client.sendMessage(ctx, chatID, text)
	return err
}

// AnswerCallback closes an inline button press, showing text as a toast when
// it is not empty.
func (g *Gateway) AnswerCallback(ctx context.Context, callbackQueryID string, text string) error {
	return g.client.answerCallbackQuery(ctx, callbackQueryID, text)
}

// OrderIDFromInvoicePayload recovers the order id string from an invoice
// payload. Returns false when the payload was not produced by SendInvoice.
func OrderIDFromInvoicePayload(payload string) (string, bool) {
	return strings.CutPrefix(payload, invoicePayloadPrefix)
}
