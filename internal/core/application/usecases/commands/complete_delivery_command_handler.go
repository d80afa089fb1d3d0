package commands

import (
	"context"

	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
)

// CompleteDeliveryCommandHandler closes an out-for-delivery order and
// frees its driver. The driver's lifetime completed counter is bumped by
// the aggregate; both records change in one transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderDriverUoWFactory
	publisher  ports.OrderPublisher
}

// NewCompleteDeliveryCommandHandler creates a delivery-completion handler.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderDriverUoWFactory,
	publisher ports.OrderPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command. Completing an order that is
// already delivered is a no-op on the order; the driver toggle only runs
// when the order actually closed while carrying an assignment.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	driverRepo := uow.DriverRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Repeated completion is accepted without touching the ledger.
	if ord.Status() == order.Delivered {
		return nil
	}

	wasOut := ord.Status() == order.Delivery
	driverID := ord.Driver()

	if err = ord.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if wasOut && driverID != nil {
		drv, drvErr := driverRepo.Get(ctx, *driverID)
		if drvErr != nil {
			return drvErr
		}

		if drvErr = drv.CompleteDelivery(); drvErr != nil {
			return drvErr
		}

		if drvErr = driverRepo.Update(ctx, drv); drvErr != nil {
			return drvErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishOrderChanged(ord.ID())
	return nil
}
