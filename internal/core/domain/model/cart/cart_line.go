package cart

import (
	"errors"
	"fmt"
	"math"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// initialVersion is the version assigned to a newly created cart line.
const initialVersion = 1

// ErrCartLineIsNotConstructed is returned when using an improperly initialized CartLine.
var ErrCartLineIsNotConstructed = errors.New("CartLine must be created via NewCartLine constructor")

// CartLine represents one product configuration in a customer's cart.
//
// A cart holds at most one line per (customer, product, variant) combination.
// Lines are never deleted while the customer shops; removing a product means
// dropping its quantity to zero. Only lines with a positive quantity take part
// in checkout.
//
// CartLine follows these invariants:
//   - Must have valid identifiers for itself, its customer, and its product
//   - Quantity never drops below zero
//   - Version starts at 1 and grows with every persisted change
//   - Can only be created through NewCartLine or RestoreCartLine
type CartLine struct {
	// id is the unique identifier of the cart line
	id kernel.UUID

	// customerID identifies the owning customer
	customerID kernel.UUID

	// productID identifies the product this line configures
	productID kernel.UUID

	// variant is the selected size/temperature configuration
	variant kernel.Variant

	// quantity is the number of units currently in the cart (>= 0)
	quantity int

	// version guards against concurrent modification of the same line
	version int

	guard guard.ConstructorGuard
}

// NewCartLine creates a fresh cart line with zero quantity.
// The line appears when the customer first opens a product; quantity changes
// and variant selection happen through the mutating methods.
func NewCartLine(id kernel.UUID, customerID kernel.UUID, productID kernel.UUID, variant kernel.Variant) (*CartLine, error) {
	line := &CartLine{
		version: initialVersion,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setCustomerID(customerID),
		line.setProductID(productID),
		line.setVariant(variant),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreCartLine reconstructs a CartLine aggregate from persistent storage.
func RestoreCartLine(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	variant kernel.Variant,
	quantity int,
	version int,
) (*CartLine, error) {
	line, err := NewCartLine(id, customerID, productID, variant)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		line.setQuantity(quantity),
		line.setVersion(version),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the CartLine instance was properly constructed.
func (l *CartLine) Validate() error {
	if l == nil || l.guard.Validate(ErrCartLineIsNotConstructed) != nil {
		return ErrCartLineIsNotConstructed
	}

	return nil
}

// IsEqual compares two cart lines by their unique identifiers.
func (l *CartLine) IsEqual(other *CartLine) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the cart line's unique identifier.
func (l *CartLine) ID() kernel.UUID {
	return l.id
}

// CustomerID returns the owning customer's identifier.
func (l *CartLine) CustomerID() kernel.UUID {
	return l.customerID
}

// ProductID returns the configured product's identifier.
func (l *CartLine) ProductID() kernel.UUID {
	return l.productID
}

// Variant returns the selected size/temperature configuration.
func (l *CartLine) Variant() kernel.Variant {
	return l.variant
}

// Quantity returns the number of units currently in the cart.
func (l *CartLine) Quantity() int {
	return l.quantity
}

// Version returns the line's optimistic concurrency version.
func (l *CartLine) Version() int {
	return l.version
}

// IsActive reports whether the line takes part in checkout.
func (l *CartLine) IsActive() bool {
	return l.quantity > 0
}

// Matches reports whether the line holds the given product configuration.
// The cart keeps at most one line per match.
func (l *CartLine) Matches(productID kernel.UUID, variant kernel.Variant) bool {
	return l.productID.IsEqual(productID) && l.variant.IsEqual(variant)
}

// Increment adds one unit to the line.
func (l *CartLine) Increment() {
	l.quantity++
}

// Decrement removes one unit from the line, stopping at zero.
func (l *CartLine) Decrement() {
	if l.quantity > 0 {
		l.quantity--
	}
}

// SetQuantity replaces the line's quantity.
// Returns an error if the quantity is negative.
func (l *CartLine) SetQuantity(quantity int) error {
	return l.setQuantity(quantity)
}

// SetVariant replaces the line's size/temperature configuration.
// Selecting a new configuration overwrites the old one rather than adding a
// second line for the same product.
func (l *CartLine) SetVariant(variant kernel.Variant) error {
	return l.setVariant(variant)
}

// setID validates and sets the cart line's unique identifier.
// This is a private method used only during construction.
func (l *CartLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// setCustomerID validates and sets the owning customer's identifier.
// This is a private method used only during construction.
func (l *CartLine) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	l.customerID = customerID
	return nil
}

// setProductID validates and sets the configured product's identifier.
// This is a private method used only during construction.
func (l *CartLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *CartLine) setVariant(variant kernel.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}
	l.variant = variant
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	l.quantity = quantity
	return nil
}

func (l *CartLine) setVersion(version int) error {
	if version < initialVersion {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is below the initial version %d", version, initialVersion))
	}
	l.version = version
	return nil
}
