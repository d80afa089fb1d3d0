package kernel

import (
	"fmt"

	"resto/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID or UUIDFromString",
)

// UUID identifies roster entities: drivers and staff members. Orders are
// keyed by their displayed TicketID instead, so a roster identifier never
// leaks onto a printed ticket.
//
// UUID is a value object wrapping github.com/google/uuid: immutable,
// compared by value, and invalid as a zero value.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random identifier for a roster entity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its string form. The standard
// hyphenated, braced and urn representations are all accepted. It is the
// entry point for identifiers arriving from persistence, seed files and
// request payloads. The nil UUID parses but stays invalid, so a zeroed
// column never restores into a usable identifier.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// String returns the hyphenated string form of the identifier.
func (u UUID) String() string {
	return u.id.String()
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value; any constructed UUID is valid.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
