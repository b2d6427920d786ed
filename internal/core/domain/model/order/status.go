package order

import (
	"errors"
	"fmt"

	"dragontea/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when an operation is not allowed
// from the order's current status. Use errors.Is to detect it.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidTransitionError describes a rejected lifecycle operation:
// which action was attempted and from which status.
type InvalidTransitionError struct {
	From   Status
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// action attempted from the given status.
func NewInvalidTransitionError(from Status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s", ErrInvalidStatusTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──┬──> Delivering ──> Completed ──> Closed
//	          │        │        │                      ^
//	          │        └────────┴──────────────────────┘
//	          │   (close before or during delivery)
//	          └──> Canceled
//	      (stale, unpaid)
//
// Courier assignment is allowed from both Pending and InProgress, so staff
// can dispatch an order they took over the counter before the payment
// callback lands.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	// The invoice has been sent but payment has not been confirmed yet.
	Pending

	// InProgress indicates payment was confirmed and the kitchen is
	// preparing the order.
	InProgress

	// Delivering indicates a courier has been assigned and the order is
	// on its way to the customer.
	Delivering

	// Completed indicates the order has been handed to the customer.
	Completed

	// Canceled indicates the order expired unpaid and was swept.
	// This is a final state with no further transitions allowed.
	Canceled

	// Closed indicates the completed order was archived by staff.
	// This is a final state with no further transitions allowed.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delivering: "delivering",
		Completed:  "completed",
		Canceled:   "canceled",
		Closed:     "closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Delivering: "delivering",
		Completed:  "completed",
		Canceled:   "canceled",
		Closed:     "closed",
	}
}

// StatusFromString parses a persisted status string back into a Status.
//
// Returns:
//   - the matching Status for a known string
//   - (Unknown, error) for anything else
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Delivering, Completed, Canceled, Closed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Canceled || s == Closed
}

// ValidateAssignCourier checks if the status allows courier assignment
// without performing the transition.
//
// Valid statuses for assignment:
//   - Pending (staff dispatches before the payment callback lands)
//   - InProgress (the usual path, after payment)
//
// Returns:
//   - nil if assignment is allowed from the current status
//   - *InvalidTransitionError otherwise
//
// This method provides assignability validation without side effects. The
// assignment flow checks it twice: when staff opens the courier prompt and
// again when the courier data is submitted, because the order can move in
// between.
func (s Status) ValidateAssignCourier() error {
	if s != Pending && s != InProgress {
		return NewInvalidTransitionError(s, "assign a courier to")
	}
	return nil
}

// ConfirmPayment transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (payment confirmed)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, *InvalidTransitionError) if the transition is not allowed
func (s Status) ConfirmPayment() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, "confirm payment for")
	}

	return InProgress, nil
}

// AssignCourier transitions the status to Delivering.
//
// Valid transitions:
//   - Pending -> Delivering
//   - InProgress -> Delivering
//
// Returns:
//   - (Delivering, nil) on valid transition
//   - (0, *InvalidTransitionError) if the transition is not allowed
func (s Status) AssignCourier() (Status, error) {
	if err := s.ValidateAssignCourier(); err != nil {
		return 0, err
	}

	return Delivering, nil
}

// Close advances the order toward the archive.
//
// Valid transitions:
//   - InProgress -> Completed (handed over without delivery)
//   - Delivering -> Completed (delivered)
//   - Completed -> Closed (archived)
//
// Returns:
//   - the next status on a valid transition
//   - (0, *InvalidTransitionError) if the transition is not allowed
//
// Closing is a two-step action on purpose: the first close marks the order
// handed over, the second close archives it off the staff's active list.
func (s Status) Close() (Status, error) {
	switch s {
	case InProgress, Delivering:
		return Completed, nil
	case Completed:
		return Closed, nil
	default:
		return 0, NewInvalidTransitionError(s, "close")
	}
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending -> Canceled (invoice expired unpaid)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, *InvalidTransitionError) if the transition is not allowed
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, "cancel")
	}

	return Canceled, nil
}
