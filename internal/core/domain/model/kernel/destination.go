package kernel

import (
	"fmt"
	"strings"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created through one of its constructors.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"Destination must be created via NewTableDestination, NewCounterDestination or NewAddressDestination",
)

// DestinationKind discriminates where an order is to be served.
type DestinationKind int

const (
	// DestinationUnknown represents an invalid or undefined destination kind.
	DestinationUnknown DestinationKind = iota

	// DestinationTable is an on-premises table, addressed by table number.
	DestinationTable

	// DestinationCounter is the pickup counter.
	DestinationCounter

	// DestinationAddress is an off-premises delivery address.
	DestinationAddress
)

// String returns the human-readable name of the destination kind.
func (k DestinationKind) String() string {
	switch k {
	case DestinationTable:
		return "Table"
	case DestinationCounter:
		return "Counter"
	case DestinationAddress:
		return "Address"
	default:
		return "Unknown"
	}
}

// Destination is where an order is served: a numbered table, the pickup
// counter, or a delivery address. Anything that is neither a table nor
// the counter is off-premises and eligible for the delivery path.
//
// Destination is a value object: immutable, compared by value, and only
// creatable through its constructors.
type Destination struct {
	kind    DestinationKind
	table   int
	address string
	note    string
	guard   guard.ConstructorGuard
}

// NewTableDestination creates a destination for the given table number.
// Table numbers start at 1.
func NewTableDestination(table int) (Destination, error) {
	if table <= 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause(
			"table",
			fmt.Errorf("%d is not greater than 0", table),
		)
	}

	return Destination{
		kind:  DestinationTable,
		table: table,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewCounterDestination creates the pickup-counter destination.
func NewCounterDestination() Destination {
	return Destination{
		kind:  DestinationCounter,
		guard: guard.NewConstructorGuard(),
	}
}

// NewAddressDestination creates an off-premises delivery destination.
// The street is required; the note (entrance code, floor) is optional.
func NewAddressDestination(street, note string) (Destination, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return Destination{}, errs.NewValueIsRequiredError("street")
	}

	return Destination{
		kind:    DestinationAddress,
		address: street,
		note:    strings.TrimSpace(note),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Destination was created through a constructor.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// Kind returns the destination discriminator.
func (d Destination) Kind() DestinationKind {
	return d.kind
}

// IsTable reports whether the order is served at a table.
func (d Destination) IsTable() bool {
	return d.kind == DestinationTable
}

// IsCounter reports whether the order is picked up at the counter.
func (d Destination) IsCounter() bool {
	return d.kind == DestinationCounter
}

// IsOffPremises reports whether the order leaves the restaurant.
// Only off-premises orders may enter the delivery path.
func (d Destination) IsOffPremises() bool {
	return d.kind == DestinationAddress
}

// Table returns the table number, or 0 for non-table destinations.
func (d Destination) Table() int {
	return d.table
}

// Address returns the delivery street, or "" for on-premises destinations.
func (d Destination) Address() string {
	return d.address
}

// Note returns the optional delivery note.
func (d Destination) Note() string {
	return d.note
}

// IsEqual compares two destinations by value, ignoring the note.
func (d Destination) IsEqual(other Destination) bool {
	return d.kind == other.kind && d.table == other.table && d.address == other.address
}

// String renders the destination for display, e.g. "Table 3".
func (d Destination) String() string {
	switch d.kind {
	case DestinationTable:
		return fmt.Sprintf("Table %d", d.table)
	case DestinationCounter:
		return "Counter"
	case DestinationAddress:
		return d.address
	default:
		return "Unknown"
	}
}
