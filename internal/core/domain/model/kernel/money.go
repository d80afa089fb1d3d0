package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created
// through NewMoney or ParseMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or ParseMoney",
)

// moneyPattern accepts a plain amount with an optional dollar sign and up
// to two decimal places. Negative amounts are rejected by shape.
var moneyPattern = regexp.MustCompile(`^\$?[0-9]+(\.[0-9]{1,2})?$`)

// Money is a non-negative monetary amount stored in cents.
// It is a value object: immutable, compared by value, and safe to copy.
// All ledger arithmetic (line extensions, totals, change due) goes
// through Money so rounding never leaks into the aggregates.
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseMoney creates a Money value from operator-entered text such as
// "200", "$140" or "12.50". Malformed and negative input is rejected;
// this is the validation behind the cash-received field at settlement.
func ParseMoney(raw string) (Money, error) {
	normalized := strings.TrimSpace(raw)
	if !moneyPattern.MatchString(normalized) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%q is not a non-negative amount", raw),
		)
	}

	normalized = strings.TrimPrefix(normalized, "$")
	whole, fraction, _ := strings.Cut(normalized, ".")

	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	cents *= 100

	if fraction != "" {
		if len(fraction) == 1 {
			fraction += "0"
		}
		frac, fracErr := strconv.ParseInt(fraction, 10, 64)
		if fracErr != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fracErr)
		}
		cents += frac
	}

	return NewMoney(cents)
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Covers reports whether this amount is greater than or equal to other.
// Used to decide whether received cash settles an order total.
func (m Money) Covers(other Money) bool {
	return m.cents >= other.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		cents: m.cents + other.cents,
		guard: guard.NewConstructorGuard(),
	}
}

// Sub returns the difference m − other.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s does not cover %s", m, other),
		)
	}

	return Money{
		cents: m.cents - other.cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MulQuantity returns the line extension for quantity units at this
// unit price. Quantity must be positive.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Money{
		cents: m.cents * int64(quantity),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String renders the amount for display, e.g. $140.00.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}
