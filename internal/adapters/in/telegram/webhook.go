package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dragontea/internal/core/application/usecases/commands"
	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/domain/services"
	"dragontea/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Callback data prefixes. Inline keyboard buttons carry these so one webhook
// endpoint can route every button press.
const (
	callbackLanguagePrefix  = "lang_"
	callbackVariantPrefix   = "variant_"
	callbackIncrementPrefix = "inc_"
	callbackDecrementPrefix = "dec_"
	callbackAssignPrefix    = "assign_"
	callbackClosePrefix     = "close_"
	callbackClearCart       = "cart_clear"
)

// startCommand begins or restarts the customer conversation.
const startCommand = "/start"

// Feedback texts for rejected actions. The webhook does not know the
// customer's language, so customer-facing texts carry both.
const (
	courierDataFormatHint = "Не удалось разобрать данные курьера.\n" +
		"Ответьте на приглашение в формате:\nимя, номер машины, модель машины"
	cartIsEmptyFeedback = "Корзина пуста, добавьте что-нибудь из меню.\n" +
		"Savat bo'sh, menyudan biror narsa qo'shing."
	storeClosedFeedback = "Сейчас мы не принимаем заказы, попробуйте в часы работы.\n" +
		"Hozir buyurtma qabul qilinmaydi, ish vaqtida urinib ko'ring."
	orderMovedOnFeedback = "Статус заказа уже изменился, кнопка устарела"
)

// PreCheckoutAnswerer answers Telegram's final payment confirmation request.
// Telegram holds the payment until an answer arrives.
type PreCheckoutAnswerer interface {
	ApprovePreCheckout(ctx context.Context, queryID string) error
}

// Messenger reports rejected actions back to whoever triggered them: a text
// message into the chat, or a toast on the pressed button.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
	AnswerCallback(ctx context.Context, callbackQueryID string, text string) error
}

// InvoicePayloadParser recovers the order id string from an invoice payload.
type InvoicePayloadParser func(payload string) (string, bool)

// Handlers bundles the command handlers the webhook dispatches to.
type Handlers struct {
	RegisterCustomer  commands.RegisterCustomerCommandHandler
	SetLanguage       commands.SetCustomerLanguageCommandHandler
	SetPhone          commands.SetCustomerPhoneCommandHandler
	SelectVariant     commands.SelectVariantCommandHandler
	ChangeQuantity    commands.ChangeQuantityCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	Checkout          commands.CheckoutCommandHandler
	ConfirmPayment    commands.ConfirmPaymentCommandHandler
	RequestAssignment commands.RequestCourierAssignmentCommandHandler
	SubmitCourierData commands.SubmitCourierDataCommandHandler
	CloseOrder        commands.CloseOrderCommandHandler
}

// WebhookServer receives Bot API updates over HTTP and translates them into
// application commands.
//
// The webhook always answers 200 to Telegram, even when a dispatch fails:
// Telegram redelivers the same update on any other status, and none of the
// failures here become retryable by replaying the update. Business
// rejections the sender can act on are reported back through the messenger;
// every failure is also logged, expected rejections at debug, the rest at
// error.
type WebhookServer struct {
	handlers     Handlers
	preCheckout  PreCheckoutAnswerer
	messenger    Messenger
	parsePayload InvoicePayloadParser
	staffChatID  int64
	logger       *slog.Logger
}

// NewWebhookServer creates the inbound webhook adapter.
// staffChatID is the group whose messages are treated as staff actions.
func NewWebhookServer(
	handlers Handlers,
	preCheckout PreCheckoutAnswerer,
	messenger Messenger,
	parsePayload InvoicePayloadParser,
	staffChatID int64,
	logger *slog.Logger,
) *WebhookServer {
	return &WebhookServer{
		handlers:     handlers,
		preCheckout:  preCheckout,
		messenger:    messenger,
		parsePayload: parsePayload,
		staffChatID:  staffChatID,
		logger:       logger.With("component", "telegram_webhook"),
	}
}

// RegisterRoutes mounts the webhook endpoint on the given echo instance.
func (s *WebhookServer) RegisterRoutes(e *echo.Echo) {
	e.POST("/telegram/webhook", s.HandleUpdate)
}

// HandleUpdate handles POST /telegram/webhook.
func (s *WebhookServer) HandleUpdate(c echo.Context) error {
	var update Update
	if err := c.Bind(&update); err != nil {
		// Not a Bot API update; nothing to redeliver.
		return c.NoContent(http.StatusOK)
	}

	ctx := c.Request().Context()

	var err error
	switch {
	case update.PreCheckoutQuery != nil:
		err = s.preCheckout.ApprovePreCheckout(ctx, update.PreCheckoutQuery.ID)
	case update.CallbackQuery != nil:
		err = s.dispatchCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		err = s.dispatchMessage(ctx, update.Message)
	}

	if err != nil {
		if isBusinessRejection(err) {
			s.logger.DebugContext(ctx, "update rejected", "update_id", update.UpdateID, "error", err)
		} else {
			s.logger.ErrorContext(ctx, "update dispatch failed", "update_id", update.UpdateID, "error", err)
		}
	}

	return c.NoContent(http.StatusOK)
}

// dispatchMessage routes a chat message.
//
// Staff-group replies are courier data submissions. In customer chats the
// attachment decides: a shared contact sets the phone, a shared location
// triggers checkout, a successful payment confirms the order, and the start
// command registers the customer. Plain text is otherwise ignored; the
// conversation is driven by buttons.
func (s *WebhookServer) dispatchMessage(ctx context.Context, message *Message) error {
	if message.SuccessfulPayment != nil {
		return s.confirmPayment(ctx, message.SuccessfulPayment.InvoicePayload)
	}

	if message.Chat.ID == s.staffChatID {
		if message.ReplyToMessage == nil || message.From == nil {
			return nil
		}
		cmd, err := commands.NewSubmitCourierDataCommand(
			message.From.ID, message.ReplyToMessage.MessageID, message.Text)
		if err != nil {
			return err
		}
		err = s.handlers.SubmitCourierData.Handle(ctx, cmd)
		if errors.Is(err, order.ErrCourierDataIsMalformed) {
			// The prompt stays open; remind the staff member of the format.
			return errors.Join(err, s.messenger.SendText(ctx, message.Chat.ID, courierDataFormatHint))
		}
		return err
	}

	switch {
	case message.Contact != nil:
		cmd, err := commands.NewSetCustomerPhoneCommand(message.Chat.ID, message.Contact.PhoneNumber)
		if err != nil {
			return err
		}
		return s.handlers.SetPhone.Handle(ctx, cmd)

	case message.Location != nil:
		cmd, err := commands.NewCheckoutCommand(
			message.Chat.ID, message.Location.Latitude, message.Location.Longitude)
		if err != nil {
			return err
		}
		err = s.handlers.Checkout.Handle(ctx, cmd)
		switch {
		case errors.Is(err, commands.ErrCartIsEmpty):
			return errors.Join(err, s.messenger.SendText(ctx, message.Chat.ID, cartIsEmptyFeedback))
		case errors.Is(err, services.ErrOutsideServiceWindow):
			return errors.Join(err, s.messenger.SendText(ctx, message.Chat.ID, storeClosedFeedback))
		}
		return err

	case strings.HasPrefix(message.Text, startCommand):
		if message.From == nil {
			return nil
		}
		cmd, err := commands.NewRegisterCustomerCommand(
			message.Chat.ID, message.From.FirstName, message.From.Username)
		if err != nil {
			return err
		}
		return s.handlers.RegisterCustomer.Handle(ctx, cmd)
	}

	return nil
}

// dispatchCallback routes an inline keyboard button press by its data prefix.
// Unknown data is ignored; stale keyboards outlive deployments.
func (s *WebhookServer) dispatchCallback(ctx context.Context, callback *CallbackQuery) error {
	data := callback.Data
	chatID := callback.From.ID
	if callback.Message != nil {
		chatID = callback.Message.Chat.ID
	}

	switch {
	case data == callbackClearCart:
		cmd, err := commands.NewClearCartCommand(chatID)
		if err != nil {
			return err
		}
		return s.handlers.ClearCart.Handle(ctx, cmd)

	case strings.HasPrefix(data, callbackLanguagePrefix):
		language := customer.Language(strings.TrimPrefix(data, callbackLanguagePrefix))
		cmd, err := commands.NewSetCustomerLanguageCommand(chatID, language)
		if err != nil {
			return err
		}
		return s.handlers.SetLanguage.Handle(ctx, cmd)

	case strings.HasPrefix(data, callbackVariantPrefix):
		productID, variant, err := parseVariantCallback(strings.TrimPrefix(data, callbackVariantPrefix))
		if err != nil {
			return err
		}
		cmd, err := commands.NewSelectVariantCommand(chatID, productID, variant)
		if err != nil {
			return err
		}
		return s.handlers.SelectVariant.Handle(ctx, cmd)

	case strings.HasPrefix(data, callbackIncrementPrefix):
		return s.changeQuantity(ctx, chatID, strings.TrimPrefix(data, callbackIncrementPrefix), 1)

	case strings.HasPrefix(data, callbackDecrementPrefix):
		return s.changeQuantity(ctx, chatID, strings.TrimPrefix(data, callbackDecrementPrefix), -1)

	case strings.HasPrefix(data, callbackAssignPrefix):
		orderID, err := kernel.UUIDFromString(strings.TrimPrefix(data, callbackAssignPrefix))
		if err != nil {
			return err
		}
		cmd, err := commands.NewRequestCourierAssignmentCommand(callback.From.ID, orderID)
		if err != nil {
			return err
		}
		return s.answerStaleButton(ctx, callback.ID, s.handlers.RequestAssignment.Handle(ctx, cmd))

	case strings.HasPrefix(data, callbackClosePrefix):
		orderID, err := kernel.UUIDFromString(strings.TrimPrefix(data, callbackClosePrefix))
		if err != nil {
			return err
		}
		cmd, err := commands.NewCloseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.answerStaleButton(ctx, callback.ID, s.handlers.CloseOrder.Handle(ctx, cmd))
	}

	return nil
}

// answerStaleButton turns a rejected status transition into a toast on the
// pressed button, so the staff member learns the card is out of date.
func (s *WebhookServer) answerStaleButton(ctx context.Context, callbackQueryID string, err error) error {
	if errors.Is(err, order.ErrInvalidStatusTransition) {
		return errors.Join(err, s.messenger.AnswerCallback(ctx, callbackQueryID, orderMovedOnFeedback))
	}
	return err
}

// changeQuantity dispatches a cart quantity button press.
func (s *WebhookServer) changeQuantity(ctx context.Context, chatID int64, data string, delta int) error {
	productID, variant, err := parseVariantCallback(data)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeQuantityCommand(chatID, productID, variant, delta)
	if err != nil {
		return err
	}
	return s.handlers.ChangeQuantity.Handle(ctx, cmd)
}

// confirmPayment resolves the invoice payload back to an order and confirms
// its payment.
func (s *WebhookServer) confirmPayment(ctx context.Context, payload string) error {
	rawID, ok := s.parsePayload(payload)
	if !ok {
		return fmt.Errorf("unrecognized invoice payload %q", payload)
	}

	orderID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return err
	}
	return s.handlers.ConfirmPayment.Handle(ctx, cmd)
}

// parseVariantCallback splits "productID_size_temperature" callback data.
// UUIDs use hyphens, so underscore is a safe field separator.
func parseVariantCallback(data string) (kernel.UUID, kernel.Variant, error) {
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return kernel.UUID{}, kernel.Variant{}, errs.NewValueIsInvalidErrorWithCause(
			"callback data is invalid",
			fmt.Errorf("expected 3 underscore-separated fields, got %d", len(parts)))
	}

	productID, err := kernel.UUIDFromString(parts[0])
	if err != nil {
		return kernel.UUID{}, kernel.Variant{}, err
	}

	size, err := kernel.SizeFromString(parts[1])
	if err != nil {
		return kernel.UUID{}, kernel.Variant{}, err
	}
	temperature, err := kernel.TemperatureFromString(parts[2])
	if err != nil {
		return kernel.UUID{}, kernel.Variant{}, err
	}

	variant, err := kernel.NewVariant(size, temperature)
	if err != nil {
		return kernel.UUID{}, kernel.Variant{}, err
	}

	return productID, variant, nil
}

// isBusinessRejection reports whether the error is an expected business
// rejection rather than a system failure. Duplicate payment callbacks, button
// presses on moved orders, and empty-cart checkouts all land here.
func isBusinessRejection(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrConcurrentModification) ||
		errors.Is(err, commands.ErrCartIsEmpty) ||
		errors.Is(err, commands.ErrNoPendingAssignment) ||
		errors.Is(err, services.ErrOutsideServiceWindow) ||
		errors.Is(err, order.ErrInvalidStatusTransition) ||
		errors.Is(err, order.ErrCourierDataIsMalformed)
}
