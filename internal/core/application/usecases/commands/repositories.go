// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/ports"
)

// Application-level errors shared by command handlers.
var (
	// ErrCartIsEmpty is returned when checkout is attempted with no active
	// cart lines.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrNoPendingAssignment is returned when courier data arrives from a
	// staff member who has no open prompt, or the reply does not reference
	// the prompt message.
	ErrNoPendingAssignment = errors.New("no pending courier assignment")
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerUoW manages transactions for customer-only operations:
	// registration, language selection, phone capture.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ShoppingUoW manages transactions for cart operations. Cart commands
	// resolve the customer by chat id and validate products against the
	// catalog, so all three repositories ride the same transaction.
	ShoppingUoW interface {
		TxManager
		CustomerRepoFactory
		CartRepoFactory
		ProductRepoFactory
	}

	// ShoppingUoWFactory creates new shopping unit of work instances.
	ShoppingUoWFactory interface {
		Create() ShoppingUoW
	}

	// CheckoutUoW manages the checkout transaction, which reads the customer,
	// cart, and catalog and writes the placed order atomically.
	CheckoutUoW interface {
		TxManager
		CustomerRepoFactory
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCustomerUoW manages transactions that change an order and then
	// notify its customer, such as payment confirmation and courier
	// assignment.
	OrderCustomerUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderCustomerUoWFactory creates new order and customer unit of work instances.
	OrderCustomerUoWFactory interface {
		Create() OrderCustomerUoW
	}
)
