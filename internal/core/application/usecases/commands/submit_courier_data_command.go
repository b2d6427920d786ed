package commands

import (
	"errors"

	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

var (
	ErrSubmitCourierDataCommandIsNotConstructed = errors.New(
		"SubmitCourierDataCommand must be created via NewSubmitCourierDataCommand constructor",
	)
)

// SubmitCourierDataCommand represents a staff member replying to a courier
// prompt with the courier's details as free text.
type SubmitCourierDataCommand struct { //nolint:recvcheck //using for validation
	staffID          int64
	replyToMessageID int
	text             string

	guard guard.ConstructorGuard
}

// NewSubmitCourierDataCommand creates a command carrying a staff reply.
// The text is parsed later so malformed input can be re-prompted rather than
// rejected here.
func NewSubmitCourierDataCommand(staffID int64, replyToMessageID int, text string) (SubmitCourierDataCommand, error) {
	command := SubmitCourierDataCommand{
		replyToMessageID: replyToMessageID,
		text:             text,
		guard:            guard.NewConstructorGuard(),
	}

	if err := command.setStaffID(staffID); err != nil {
		return SubmitCourierDataCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCourierDataCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCourierDataCommandIsNotConstructed)
}

// StaffID returns the replying staff member's user id.
func (c SubmitCourierDataCommand) StaffID() int64 {
	return c.staffID
}

// ReplyToMessageID returns the id of the message the staff member replied to.
func (c SubmitCourierDataCommand) ReplyToMessageID() int {
	return c.replyToMessageID
}

// Text returns the raw courier details text.
func (c SubmitCourierDataCommand) Text() string {
	return c.text
}

func (c *SubmitCourierDataCommand) setStaffID(staffID int64) error {
	if staffID == 0 {
		return errs.NewValueIsRequiredError("staffID")
	}
	c.staffID = staffID
	return nil
}
