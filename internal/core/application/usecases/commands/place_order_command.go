package commands

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrItemsAreRequired       = errors.New("at least one line item is required")
)

// PlaceOrderCommand represents an intake request from the counter, a
// table, or the public storefront. Line items are carried as validated
// domain values; the ticket identifier is reserved by the handler.
//
// Example:
//
//	item, _ := order.NewLineItem("Pad Thai", "Spicy", price, 2)
//	cmd, err := NewPlaceOrderCommand(
//	    "Ada", "555-0101", destination, order.ChannelCounterOfSale,
//	    []order.LineItem{item}, &waiterID, time.Now(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid intake: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerName  string
	customerPhone string
	destination   kernel.Destination
	channel       order.Channel
	items         []order.LineItem
	waiterID      *kernel.UUID
	now           time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates an intake command.
// Validates that the customer is named, the destination and channel are
// constructed, and at least one item is present.
func NewPlaceOrderCommand(
	customerName string,
	customerPhone string,
	destination kernel.Destination,
	channel order.Channel,
	items []order.LineItem,
	waiterID *kernel.UUID,
	now time.Time,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerPhone: customerPhone,
		waiterID:      waiterID,
		now:           now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDestination(destination),
		cmd.setChannel(channel),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerName returns the ordering customer's name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone ("" when unknown).
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Destination returns where the order is served.
func (c PlaceOrderCommand) Destination() kernel.Destination {
	return c.destination
}

// Channel returns the intake origin.
func (c PlaceOrderCommand) Channel() order.Channel {
	return c.channel
}

// Items returns the ordered line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

// WaiterID returns the owning waiter for table intake, nil otherwise.
func (c PlaceOrderCommand) WaiterID() *kernel.UUID {
	return c.waiterID
}

// Now returns the intake timestamp.
func (c PlaceOrderCommand) Now() time.Time {
	return c.now
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *PlaceOrderCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *PlaceOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	c.channel = channel
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
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
