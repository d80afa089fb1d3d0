package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents the kitchen station finishing
// preparation of an order. The transition is unconditional: there is no
// payment precondition on leaving the kitchen.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.TicketID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command for the kitchen transition.
func NewMarkOrderReadyCommand(orderID kernel.TicketID) (MarkOrderReadyCommand, error) {
	cmd := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the ticket identifier of the finished order.
func (c MarkOrderReadyCommand) OrderID() kernel.TicketID {
	return c.orderID
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.TicketID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
