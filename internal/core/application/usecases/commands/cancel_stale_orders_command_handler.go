package commands

import (
	"context"
	"errors"
	"time"

	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler sweeps orders that sat unpaid past their
// time to live.
//
// The sweep can race a payment callback. Both races resolve in the
// customer's favor: a transition rejected in memory means the order was paid
// before this sweep loaded it, and a lost compare-and-swap means it was paid
// after. Either way the order is skipped, not failed.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock func() time.Time,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the sweep command.
// Returns the first persistence error that is not a lost race.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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

	orderRepo := uow.OrderRepository()

	cutoff := h.clock().Add(-cmd.TTL())
	stale, err := orderRepo.GetAllStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, placed := range stale {
		if err = placed.Cancel(); err != nil {
			if errors.Is(err, order.ErrInvalidStatusTransition) {
				continue
			}
			return err
		}

		if err = orderRepo.Update(ctx, placed); err != nil {
			if errors.Is(err, errs.ErrConcurrentModification) {
				continue
			}
			return err
		}
	}

	return uow.Commit(ctx)
}
