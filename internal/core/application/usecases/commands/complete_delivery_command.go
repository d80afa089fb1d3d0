package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a driver finishing their route:
// the order is handed over and the driver returns to the available pool.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.TicketID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a delivery-completion command.
func NewCompleteDeliveryCommand(orderID kernel.TicketID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the ticket identifier of the delivered order.
func (c CompleteDeliveryCommand) OrderID() kernel.TicketID {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.TicketID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
