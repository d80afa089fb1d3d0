package commands

import (
	"context"

	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/services"
	"resto/internal/core/ports"
)

// DispatchOrderCommandHandler releases a verified ready order to a
// driver. Updates the order and the driver roster within a single
// transaction so a failed toggle never leaves a half-dispatched order.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewDispatchOrderCommand(ticketID, driverID, "ord-101", time.Now())
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrTicketMismatch):
//	    // Operator mistyped; order stays Ready.
//	case errors.Is(err, services.ErrDriverHasActiveDelivery):
//	    // Driver already on a route.
//	}
type DispatchOrderCommandHandler struct {
	uowFactory OrderDriverUoWFactory
	publisher  ports.OrderPublisher
}

// NewDispatchOrderCommandHandler creates a dispatch handler.
func NewDispatchOrderCommandHandler(
	uowFactory OrderDriverUoWFactory,
	publisher ports.OrderPublisher,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch command. The DispatchService enforces the
// one-route-per-driver rule against the current delivery-status orders
// and the aggregate enforces ticket verification and status rules.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	activeDeliveries, err := orderRepo.GetAllInStatus(ctx, order.Delivery)
	if err != nil {
		return err
	}

	if err = services.NewDispatchService().Dispatch(ord, drv, activeDeliveries, cmd.Confirmation(), cmd.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishOrderChanged(ord.ID())
	return nil
}
