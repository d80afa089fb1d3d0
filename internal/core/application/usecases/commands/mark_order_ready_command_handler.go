package commands

import (
	"context"

	"resto/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves an order from Kitchen to Ready on
// behalf of the kitchen station.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
}

// NewMarkOrderReadyCommandHandler creates a handler for the kitchen transition.
func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderPublisher,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the Kitchen -> Ready transition and
// persists it. Status preconditions are enforced by the aggregate.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.MarkReady(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishOrderChanged(ord.ID())
	return nil
}
