package ports

import (
	"context"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/order"
)

// CustomerNotifier sends messages to a single customer's chat, localized to
// the customer's language.
type CustomerNotifier interface {
	// NotifyPaymentAccepted tells the customer their payment went through and
	// the order is being prepared.
	NotifyPaymentAccepted(ctx context.Context, aggregate *customer.Customer, placed *order.Order) error

	// NotifyCourierAssigned sends the customer their courier's name and car
	// details once the order is on its way.
	NotifyCourierAssigned(ctx context.Context, aggregate *customer.Customer, courier order.Courier) error

	// NotifyOrderCompleted tells the customer their order arrived and invites
	// them back to the menu.
	NotifyOrderCompleted(ctx context.Context, aggregate *customer.Customer, placed *order.Order) error
}

// StaffChannel posts to the staff group chat where orders are worked.
type StaffChannel interface {
	// PostNewOrder announces a freshly paid order to the staff group with the
	// customer's contact details and the order contents.
	PostNewOrder(ctx context.Context, placed *order.Order, aggregate *customer.Customer) error

	// PromptCourierData asks a staff member to reply with courier details for
	// the given order. Returns the id of the prompt message; the reply must
	// reference that message for the submission to match.
	PromptCourierData(ctx context.Context, staffChatID int64, placed *order.Order) (int, error)

	// PostOrderUpdate posts the order's current status to the staff group
	// after a lifecycle change, so the group sees dispatches and closures.
	PostOrderUpdate(ctx context.Context, placed *order.Order) error
}

// InvoiceSender issues payment invoices to customers.
type InvoiceSender interface {
	// SendInvoice sends the customer an invoice for the placed order, itemized
	// into the cart total and the delivery fee.
	SendInvoice(ctx context.Context, aggregate *customer.Customer, placed *order.Order) error
}
