// Package order contains the Order aggregate and its supporting value
// objects: the lifecycle Status state machine, the priced Item snapshots
// frozen at checkout, and the free-text Courier details.
//
// An order is born Pending at checkout, becomes InProgress when the payment
// callback confirms the invoice, Delivering when staff assigns a courier,
// and Completed/Closed through the two-step close action. Unpaid orders are
// swept to Canceled. All transitions are enforced by the aggregate; rejected
// transitions never mutate the order.
package order
