package order

import (
	"fmt"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"LineItem must be created via NewLineItem or RestoreLineItem",
)

// LineItem is one ordered dish: a menu item name, the chosen variation
// label, a unit price and a quantity. Items added after the order was
// first sent to the kitchen carry the stale flag so the kitchen display
// can call out late additions.
//
// LineItem is a value object; the extension (unit price × quantity) is
// computed at construction and never supplied from outside.
type LineItem struct {
	name      string
	variation string
	unitPrice kernel.Money
	quantity  int
	stale     bool
	guard     guard.ConstructorGuard
}

// NewLineItem creates a line item for the given dish.
// The name must be non-empty, the unit price constructed, and the
// quantity positive. New items are not stale.
func NewLineItem(name, variation string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	item.name = name
	item.variation = strings.TrimSpace(variation)
	item.unitPrice = unitPrice
	item.quantity = quantity
	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including
// its stale flag.
func RestoreLineItem(name, variation string, unitPrice kernel.Money, quantity int, stale bool) (LineItem, error) {
	item, err := NewLineItem(name, variation, unitPrice, quantity)
	if err != nil {
		return LineItem{}, err
	}

	item.stale = stale
	return item, nil
}

// Validate ensures the LineItem was created through a constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// Name returns the menu item name.
func (i LineItem) Name() string {
	return i.name
}

// Variation returns the chosen variation label ("" when none).
func (i LineItem) Variation() string {
	return i.variation
}

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered unit count.
func (i LineItem) Quantity() int {
	return i.quantity
}

// IsStale reports whether the item was added after the order first went
// to the kitchen.
func (i LineItem) IsStale() bool {
	return i.stale
}

// AsStale returns a copy of the item flagged as a late addition.
func (i LineItem) AsStale() LineItem {
	i.stale = true
	return i
}

// Extension returns the line total: unit price × quantity.
func (i LineItem) Extension() kernel.Money {
	// Quantity was validated positive at construction.
	extension, _ := i.unitPrice.MulQuantity(i.quantity)
	return extension
}

// isSameDish reports whether two items refer to the same dish and
// variation. Used to tell edits apart from late additions.
func (i LineItem) isSameDish(other LineItem) bool {
	return strings.EqualFold(i.name, other.name) && strings.EqualFold(i.variation, other.variation)
}
