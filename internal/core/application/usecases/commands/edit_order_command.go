package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"edit order command must be created via NewEditOrderCommand",
)

// EditOrderCommand re-opens an order for modification, replacing its line
// items wholesale. For table orders the edit is gated on the acting staff
// member's credential; counter and online orders carry no gate.
//
//nolint:recvcheck //using for validation
type EditOrderCommand struct {
	orderID    kernel.TicketID
	items      []order.LineItem
	staffID    *kernel.UUID
	credential string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates an edit command, validating input data.
// staffID and credential identify the acting staff member; they are
// required only when the handler finds the order bound to a table.
func NewEditOrderCommand(
	orderID kernel.TicketID,
	items []order.LineItem,
	staffID *kernel.UUID,
	credential string,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		staffID:    staffID,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return EditOrderCommand{}, err
	}

	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return EditOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("staffID", err)
		}
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() kernel.TicketID {
	return c.orderID
}

func (c EditOrderCommand) Items() []order.LineItem {
	return c.items
}

// StaffID returns the acting staff member, nil when none was presented.
func (c EditOrderCommand) StaffID() *kernel.UUID {
	return c.staffID
}

func (c EditOrderCommand) Credential() string {
	return c.credential
}

func (c *EditOrderCommand) setOrderID(orderID kernel.TicketID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
