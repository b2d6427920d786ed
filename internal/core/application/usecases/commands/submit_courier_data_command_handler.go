package commands

import (
	"context"
	"errors"

	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/ports"
)

// SubmitCourierDataCommandHandler matches a staff reply against the staff
// member's open courier prompt and dispatches the order.
//
// The pending prompt is consumed carefully:
//   - a reply that does not reference the prompt message is ignored
//   - malformed courier data keeps the prompt open so the staff member can
//     answer again
//   - a rejected transition (the order moved on) consumes the prompt, since
//     re-answering cannot help
//   - a lost concurrent update keeps the prompt open so the reply can be
//     resent
type SubmitCourierDataCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	pending    ports.PendingAssignmentStore
	notifier   ports.CustomerNotifier
	staff      ports.StaffChannel
}

// NewSubmitCourierDataCommandHandler creates a handler for courier replies.
func NewSubmitCourierDataCommandHandler(
	uowFactory OrderCustomerUoWFactory,
	pending ports.PendingAssignmentStore,
	notifier ports.CustomerNotifier,
	staff ports.StaffChannel,
) SubmitCourierDataCommandHandler {
	return SubmitCourierDataCommandHandler{
		uowFactory: uowFactory,
		pending:    pending,
		notifier:   notifier,
		staff:      staff,
	}
}

// Handle processes the staff reply.
//
// Returns ErrNoPendingAssignment when the staff member has no open prompt or
// the reply references a different message, and
// order.ErrCourierDataIsMalformed when the text does not parse; callers
// re-prompt on the latter.
func (h *SubmitCourierDataCommandHandler) Handle(ctx context.Context, cmd SubmitCourierDataCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	assignment, err := h.pending.Get(ctx, cmd.StaffID())
	if err != nil {
		return ErrNoPendingAssignment
	}
	if assignment.PromptMessageID != cmd.ReplyToMessageID() {
		return ErrNoPendingAssignment
	}

	courier, err := order.ParseCourier(cmd.Text())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placed, err := uow.OrderRepository().Get(ctx, assignment.OrderID)
	if err != nil {
		return err
	}

	if err = placed.AssignCourier(courier); err != nil {
		if errors.Is(err, order.ErrInvalidStatusTransition) {
			_ = h.pending.Delete(ctx, cmd.StaffID())
		}
		return err
	}

	if err = uow.OrderRepository().Update(ctx, placed); err != nil {
		return err
	}

	aggregate, err := uow.CustomerRepository().Get(ctx, placed.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.pending.Delete(ctx, cmd.StaffID()); err != nil {
		return err
	}

	return errors.Join(
		h.notifier.NotifyCourierAssigned(ctx, aggregate, courier),
		h.staff.PostOrderUpdate(ctx, placed),
	)
}
