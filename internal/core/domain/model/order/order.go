package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// initialVersion is the version assigned to a newly placed order.
const initialVersion = 1

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when attempting to place an order
	// without any items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order represents a placed customer order. It is the aggregate root that
// manages the order lifecycle from checkout through payment, delivery, and
// archival.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must contain at least one item snapshot
//   - Must have a valid delivery location
//   - Item total, delivery cost, and total price are frozen at checkout;
//     the total is always the item total plus the delivery cost
//   - Status transitions follow the rules defined on Status
//   - Courier details are present exactly when the status requires them
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// items are the priced cart line snapshots frozen at checkout
	items []Item

	// itemsTotal is the sum of the item line totals
	itemsTotal int

	// deliveryCost is the distance-based delivery fee frozen at checkout
	deliveryCost int

	// address is the human-readable delivery address
	address string

	// location is the delivery destination coordinates
	location kernel.Location

	// courier holds the delivery details (nil until a courier is assigned)
	courier *Courier

	// status represents the current state in the order lifecycle
	status Status

	// version guards against concurrent modification of the same order
	version int

	// createdAt is the checkout timestamp, used by the stale-order sweep
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order at checkout. This is the only way to place
// an order, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the ordering customer (must be a valid UUID)
//   - items: Priced cart line snapshots (at least one)
//   - deliveryCost: Delivery fee resolved from the delivery location
//   - address: Human-readable delivery address
//   - location: Delivery coordinates with validated bounds
//   - createdAt: Checkout timestamp
//
// Returns:
//   - *Order: The placed order in Pending status with no courier
//   - error: Validation error if any parameter is invalid
//
// The item total and final price are computed here and never change
// afterwards, so later catalog edits cannot affect a placed order.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	deliveryCost int,
	address string,
	location kernel.Location,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		address:   address,
		status:    Pending,
		version:   initialVersion,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setDeliveryCost(deliveryCost),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it restores the full lifecycle state, including the
// status, courier details, and concurrency version.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	deliveryCost int,
	address string,
	location kernel.Location,
	courier *Courier,
	status Status,
	version int,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, items, deliveryCost, address, location, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		order.setStatus(status, courier),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the priced cart line snapshots frozen at checkout.
// The returned slice must not be modified.
func (o *Order) Items() []Item {
	return o.items
}

// ItemsTotal returns the sum of the item line totals.
func (o *Order) ItemsTotal() int {
	return o.itemsTotal
}

// DeliveryCost returns the delivery fee frozen at checkout.
func (o *Order) DeliveryCost() int {
	return o.deliveryCost
}

// TotalPrice returns the final price: item total plus delivery cost.
func (o *Order) TotalPrice() int {
	return o.itemsTotal + o.deliveryCost
}

// Address returns the human-readable delivery address.
func (o *Order) Address() string {
	return o.address
}

// Location returns the delivery destination coordinates.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's details.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *Courier {
	return o.courier
}

// Version returns the order's optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsStale reports whether the order has sat unpaid longer than ttl as of now.
// Only Pending orders can be stale; paid orders never expire.
func (o *Order) IsStale(now time.Time, ttl time.Duration) bool {
	return o.status == Pending && now.Sub(o.createdAt) >= ttl
}

// ConfirmPayment marks the order as paid and moves it to InProgress.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Pending
//
// The order is left unchanged when the transition is rejected, so a duplicate
// payment callback is safe to ignore.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignCourier records the courier details and moves the order to Delivering.
//
// This method enforces the following business rules:
//   - The courier details must be a properly constructed Courier
//   - The order must be in Pending or InProgress status
//
// Parameters:
//   - courier: The courier details parsed from the staff's reply
//
// Returns:
//   - nil on successful assignment
//   - error if the courier is invalid or the transition is not allowed
//
// The order is left unchanged when the transition is rejected.
func (o *Order) AssignCourier(courier Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignCourier()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courier = &courier
	return nil
}

// Close advances the order toward the archive: an active order becomes
// Completed, a Completed order becomes Closed.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order cannot be closed from its status
//
// The order is left unchanged when the transition is rejected. In particular
// a Pending order cannot be closed; it must be paid or swept first.
func (o *Order) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks an unpaid order as Canceled.
//
// Returns:
//   - nil on success
//   - *InvalidTransitionError if the order is not Pending
//
// The order is left unchanged when the transition is rejected, so the stale
// sweep racing a payment callback loses cleanly.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates the item snapshots and freezes the item total.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Total()
	}

	o.items = items
	o.itemsTotal = total
	return nil
}

// setDeliveryCost validates and sets the delivery fee.
// This is a private method used only during construction.
func (o *Order) setDeliveryCost(deliveryCost int) error {
	if deliveryCost < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryCost", deliveryCost, 0, math.MaxInt)
	}
	o.deliveryCost = deliveryCost
	return nil
}

// setLocation validates and sets the delivery coordinates.
// This is a private method used only during construction.
func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setStatus validates and sets the restored lifecycle state, checking the
// status and courier details for consistency.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status, courier *Courier) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courier != nil {
		if err := courier.Validate(); err != nil {
			return err
		}
	}

	o.status = status
	o.courier = courier
	return nil
}

// setVersion validates and sets the optimistic concurrency version.
// This is a private method used only during restoration.
func (o *Order) setVersion(version int) error {
	if version < initialVersion {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is below the initial version %d", version, initialVersion))
	}
	o.version = version
	return nil
}
