package order

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// Channel tags where an order originated.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelCounterOfSale covers staff-entered orders: counter and table intake.
	ChannelCounterOfSale

	// ChannelOnline covers orders placed through the public storefront.
	ChannelOnline
)

// Validate checks if the Channel value is valid.
func (c Channel) Validate() error {
	if c != ChannelCounterOfSale && c != ChannelOnline {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the human-readable name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelCounterOfSale:
		return "CounterOfSale"
	case ChannelOnline:
		return "Online"
	default:
		return "Unknown"
	}
}
