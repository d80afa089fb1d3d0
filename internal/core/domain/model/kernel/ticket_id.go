package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// ErrTicketIDIsNotConstructed is returned when a TicketID was not created
// through NewTicketID or NextTicketID.
var ErrTicketIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TicketID must be created via NewTicketID or NextTicketID",
)

// ticketPattern is the displayed order identifier shape: the ORD prefix
// followed by a digit suffix. Digits only, so operators never have to
// distinguish O/0 or I/1 when re-typing a ticket at the dispatch station.
var ticketPattern = regexp.MustCompile(`^ORD-[0-9]{3,6}$`)

// TicketID is the human-displayed order identifier (e.g. ORD-0101).
// It doubles as the dispatch-verification secret: operators re-type it
// before a delivery order is released, and Matches performs the
// case-insensitive exact comparison that gates the release.
//
// TicketID is a value object: immutable, compared by value, and only
// creatable through its constructors.
type TicketID struct {
	value string
	guard guard.ConstructorGuard
}

// NewTicketID creates a TicketID from its displayed form.
// Input is trimmed and uppercased before shape validation, so "ord-101"
// and "ORD-101" produce the same identifier.
//
// Returns an errs.ValueIsInvalidError when the input does not match the
// ORD-### .. ORD-###### shape.
func NewTicketID(raw string) (TicketID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !ticketPattern.MatchString(normalized) {
		return TicketID{}, errs.NewValueIsInvalidErrorWithCause(
			"ticket id",
			fmt.Errorf("%q does not match the ORD-digits shape", raw),
		)
	}

	return TicketID{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NextTicketID derives the displayed identifier for a ledger sequence
// number. Sequence 101 becomes ORD-0101.
func NextTicketID(seq int64) (TicketID, error) {
	if seq <= 0 {
		return TicketID{}, errs.NewValueIsInvalidErrorWithCause(
			"ticket sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}

	return NewTicketID(fmt.Sprintf("ORD-%04d", seq))
}

// Validate ensures the TicketID was created through a constructor.
func (t TicketID) Validate() error {
	return t.guard.Validate(ErrTicketIDIsNotConstructed)
}

// String returns the displayed form of the identifier.
func (t TicketID) String() string {
	return t.value
}

// IsEqual compares two ticket identifiers by value.
func (t TicketID) IsEqual(other TicketID) bool {
	return t.value == other.value
}

// Matches reports whether operator-entered text confirms this identifier.
// The comparison is trimmed and case-insensitive but otherwise exact:
// near-misses are rejected, never fuzzy-matched.
func (t TicketID) Matches(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), t.value)
}
