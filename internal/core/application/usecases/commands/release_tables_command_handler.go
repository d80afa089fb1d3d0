package commands

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/ports"
)

// ReleaseTablesCommandHandler runs the periodic table sweep. A settlement
// that raced in after the candidate read is still safe: eligibility is
// re-checked on the aggregate and closing is idempotent.
type ReleaseTablesCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
}

// NewReleaseTablesCommandHandler creates a table sweep handler.
func NewReleaseTablesCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderPublisher,
) ReleaseTablesCommandHandler {
	return ReleaseTablesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle closes every settled table order whose grace window has elapsed.
// Orders still inside the window stay untouched for the next sweep.
func (h ReleaseTablesCommandHandler) Handle(ctx context.Context, cmd ReleaseTablesCommand) error {
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

	candidates, err := orderRepo.GetReleasable(ctx)
	if err != nil {
		return err
	}

	released := make([]kernel.TicketID, 0, len(candidates))

	for _, ord := range candidates {
		if !ord.ReadyForTableRelease(cmd.Now(), cmd.Grace()) {
			continue
		}

		// One candidate that cannot close must not block the rest of the
		// sweep; it stays as is and is re-evaluated on the next tick.
		if deliverErr := ord.Deliver(); deliverErr != nil {
			continue
		}

		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}

		released = append(released, ord.ID())
	}

	if len(released) == 0 {
		return uow.Rollback(ctx)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, id := range released {
		h.publisher.PublishOrderChanged(id)
	}

	return nil
}
