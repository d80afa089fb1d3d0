package commands

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents the logistics station releasing a ready
// delivery order to a chosen driver. The confirmation field carries the
// operator-re-typed ticket text verified against the true identifier;
// mismatches are rejected without limit and without mutation.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.TicketID
	driverID     kernel.UUID
	confirmation string
	now          time.Time

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a dispatch command.
// The chosen driver is required: the station disables dispatch until one
// is selected, and the command enforces the same precondition.
func NewDispatchOrderCommand(
	orderID kernel.TicketID,
	driverID kernel.UUID,
	confirmation string,
	now time.Time,
) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		confirmation: confirmation,
		now:          now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the ticket identifier of the order to release.
func (c DispatchOrderCommand) OrderID() kernel.TicketID {
	return c.orderID
}

// DriverID returns the chosen driver's identifier.
func (c DispatchOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Confirmation returns the operator-re-typed ticket text.
func (c DispatchOrderCommand) Confirmation() string {
	return c.confirmation
}

// Now returns the dispatch timestamp.
func (c DispatchOrderCommand) Now() time.Time {
	return c.now
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.TicketID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
