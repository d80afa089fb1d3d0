package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
	"resto/internal/pkg/errs"
)

// ErrTableIsOccupied is returned when intake targets a table that already
// has a non-terminal order. A table is uniquely addressable by at most
// one active order at a time.
var ErrTableIsOccupied = errors.New("table already has an active order")

// PlaceOrderCommandHandler handles order intake. Reserves the next ticket
// identifier, enforces table exclusivity, and creates the order in
// Kitchen status inside a transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order intake.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the intake command and returns the reserved ticket
// identifier of the created order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.TicketID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TicketID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TicketID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if cmd.Destination().IsTable() {
		_, err := orderRepo.GetActiveByTable(ctx, cmd.Destination().Table())
		if err == nil {
			return kernel.TicketID{}, ErrTableIsOccupied
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.TicketID{}, err
		}
	}

	seq, err := orderRepo.NextSequence(ctx)
	if err != nil {
		return kernel.TicketID{}, err
	}

	ticketID, err := kernel.NextTicketID(seq)
	if err != nil {
		return kernel.TicketID{}, err
	}

	newOrder, err := order.NewOrder(
		ticketID,
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Destination(),
		cmd.Channel(),
		cmd.Items(),
		cmd.WaiterID(),
		cmd.Now(),
	)
	if err != nil {
		return kernel.TicketID{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.TicketID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TicketID{}, err
	}

	h.publisher.PublishOrderChanged(ticketID)
	return ticketID, nil
}
