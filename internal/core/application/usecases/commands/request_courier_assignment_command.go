package commands

import (
	"errors"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrRequestCourierAssignmentCommandIsNotConstructed = errors.New(
		"RequestCourierAssignmentCommand must be created via NewRequestCourierAssignmentCommand constructor",
	)
)

// RequestCourierAssignmentCommand represents a staff member pressing the
// assign-courier button on an order in the staff group.
type RequestCourierAssignmentCommand struct { //nolint:recvcheck //using for validation
	staffID int64
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCourierAssignmentCommand creates a command to open a courier
// details prompt for the given order, addressed to the given staff member.
func NewRequestCourierAssignmentCommand(staffID int64, orderID kernel.UUID) (RequestCourierAssignmentCommand, error) {
	command := RequestCourierAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStaffID(staffID),
		command.setOrderID(orderID),
	); err != nil {
		return RequestCourierAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCourierAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRequestCourierAssignmentCommandIsNotConstructed)
}

// StaffID returns the requesting staff member's user id.
func (c RequestCourierAssignmentCommand) StaffID() int64 {
	return c.staffID
}

// OrderID returns the order to dispatch.
func (c RequestCourierAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RequestCourierAssignmentCommand) setStaffID(staffID int64) error {
	if staffID == 0 {
		return errs.NewValueIsRequiredError("staffID")
	}
	c.staffID = staffID
	return nil
}

func (c *RequestCourierAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
