package commands

import (
	"context"
	"fmt"
	"time"

	"dragontea/internal/core/domain/model/cart"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/core/domain/model/order"
	"dragontea/internal/core/domain/model/product"
	"dragontea/internal/core/domain/services"
	"dragontea/internal/core/ports"
	"dragontea/internal/pkg/errs"
)

// CheckoutCommandHandler turns the customer's cart into a pending order.
//
// In one transaction it snapshots the active cart lines into priced order
// items, computes the delivery fee from the shared location, persists the
// order, and empties the cart. The invoice is sent only after the
// transaction commits, so a failed send leaves a pending order that the
// stale sweep will cancel rather than a phantom invoice.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	window     services.ServiceWindow
	calculator services.DeliveryCalculator
	invoices   ports.InvoiceSender
	clock      func() time.Time
}

// NewCheckoutCommandHandler creates a handler for checkout.
// The clock supplies the store-local time used for the service window check
// and the order timestamp.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	window services.ServiceWindow,
	calculator services.DeliveryCalculator,
	invoices ports.InvoiceSender,
	clock func() time.Time,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		window:     window,
		calculator: calculator,
		invoices:   invoices,
		clock:      clock,
	}
}

// Handle processes the checkout command.
//
// Returns ErrCartIsEmpty when no cart line has a positive quantity and
// services.ErrOutsideServiceWindow when the store is closed, checked in that
// order. Both are checked before anything is written.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	aggregate, err := uow.CustomerRepository().GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	lines, err := uow.CartRepository().GetActiveLines(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	now := h.clock()
	if err = h.window.EnsureOpen(now); err != nil {
		return err
	}

	deliveryCost, err := h.calculator.CostTo(cmd.Location())
	if err != nil {
		return err
	}

	items, err := h.snapshotItems(ctx, uow.ProductRepository(), lines)
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		aggregate.ID(),
		items,
		deliveryCost,
		cmd.Location().String(),
		cmd.Location(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.CartRepository().Clear(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.invoices.SendInvoice(ctx, aggregate, placed)
}

// snapshotItems prices the active cart lines against the catalog and freezes
// them into order items.
func (h *CheckoutCommandHandler) snapshotItems(
	ctx context.Context,
	productRepo ports.ProductRepository,
	lines []*cart.CartLine,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID())
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("product", line.ProductID(),
				fmt.Errorf("cart references a product missing from the catalog"))
		}

		size := line.Variant().Size()
		item, itemErr := order.NewItem(
			p.TitleRU(),
			p.TitleUZ(),
			p.UnitPrice(size),
			line.Quantity(),
			line.Variant(),
			p.VolumeFor(size),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}
