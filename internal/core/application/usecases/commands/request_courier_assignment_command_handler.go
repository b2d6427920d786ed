package commands

import (
	"context"
	"time"

	"dragontea/internal/core/ports"
)

// RequestCourierAssignmentCommandHandler opens a courier-details prompt for
// a staff member.
//
// The order itself is not modified here. The handler only checks that the
// order can still take a courier, sends the prompt, and remembers which
// order and prompt message the staff member's eventual reply must match.
// The same check runs again when the reply arrives, because the order can
// move in between.
type RequestCourierAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
	staff      ports.StaffChannel
	pending    ports.PendingAssignmentStore
	clock      func() time.Time
}

// NewRequestCourierAssignmentCommandHandler creates a handler for opening
// courier prompts.
func NewRequestCourierAssignmentCommandHandler(
	uowFactory OrderUoWFactory,
	staff ports.StaffChannel,
	pending ports.PendingAssignmentStore,
	clock func() time.Time,
) RequestCourierAssignmentCommandHandler {
	return RequestCourierAssignmentCommandHandler{
		uowFactory: uowFactory,
		staff:      staff,
		pending:    pending,
		clock:      clock,
	}
}

// Handle processes the prompt request.
// Returns an error wrapping order.ErrInvalidStatusTransition when the order
// can no longer take a courier.
func (h *RequestCourierAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd RequestCourierAssignmentCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = placed.Status().ValidateAssignCourier(); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	messageID, err := h.staff.PromptCourierData(ctx, cmd.StaffID(), placed)
	if err != nil {
		return err
	}

	return h.pending.Put(ctx, cmd.StaffID(), ports.PendingAssignment{
		OrderID:         placed.ID(),
		PromptMessageID: messageID,
		CreatedAt:       h.clock(),
	})
}
