// Package telegram implements the outbound messaging ports over the
// Telegram Bot API: customer notifications, the staff order channel, and
// payment invoices.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client is a minimal Telegram Bot API client covering the methods the
// ordering flow needs. It speaks JSON over HTTP; no long polling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a Bot API client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewClientWithBaseURL creates a client against a non-default API server.
// Used by tests to point the client at a local stub.
func NewClientWithBaseURL(token string, baseURL string) *Client {
	client := NewClient(token)
	client.baseURL = baseURL
	return client
}

// apiResponse is the uniform Bot API envelope.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// messageResult carries the fields of a sent message the callers care about.
type messageResult struct {
	MessageID int `json:"message_id"`
}

// labeledPrice is one line of an invoice, amount in the currency's smallest
// units.
type labeledPrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// call posts a Bot API method and decodes the result envelope.
func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}

	if !envelope.OK {
		return fmt.Errorf("telegram: %s failed: %s", method, envelope.Description)
	}

	if result != nil {
		return json.Unmarshal(envelope.Result, result)
	}
	return nil
}

// sendMessage sends a plain text message and returns its message id.
func (c *Client) sendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}

	var message messageResult
	if err := c.call(ctx, "sendMessage", payload, &message); err != nil {
		return 0, err
	}
	return message.MessageID, nil
}

// approvePreCheckoutQuery accepts a payment at the final confirmation step.
func (c *Client) approvePreCheckoutQuery(ctx context.Context, queryID string) error {
	payload := map[string]any{
		"pre_checkout_query_id": queryID,
		"ok":                    true,
	}

	return c.call(ctx, "answerPreCheckoutQuery", payload, nil)
}

// answerCallbackQuery closes an inline button press. A non-empty text is
// shown to the user as a toast.
func (c *Client) answerCallbackQuery(ctx context.Context, callbackQueryID string, text string) error {
	payload := map[string]any{
		"callback_query_id": callbackQueryID,
	}
	if text != "" {
		payload["text"] = text
	}

	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

// sendInvoice sends a payment invoice. Prices are in the currency's
// smallest units.
func (c *Client) sendInvoice(
	ctx context.Context,
	chatID int64,
	title string,
	description string,
	invoicePayload string,
	providerToken string,
	currency string,
	prices []labeledPrice,
) error {
	payload := map[string]any{
		"chat_id":        chatID,
		"title":          title,
		"description":    description,
		"payload":        invoicePayload,
		"provider_token": providerToken,
		"currency":       currency,
		"prices":         prices,
	}

	return c.call(ctx, "sendInvoice", payload, nil)
}
