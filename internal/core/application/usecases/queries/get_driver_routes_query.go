package queries

import (
	"errors"
	"time"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrGetDriverRoutesQueryIsNotConstructed = errors.New(
	"GetDriverRoutesQuery must be created via NewGetDriverRoutesQuery constructor",
)

// GetDriverRoutesQuery retrieves busy drivers joined to the delivery
// order each is carrying. The pairing is derived from the ledger; the
// roster stores no order back-reference.
//
//nolint:recvcheck //using for validation
type GetDriverRoutesQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetDriverRoutesQuery creates a routes query for the given instant.
func NewGetDriverRoutesQuery(now time.Time) (GetDriverRoutesQuery, error) {
	if now.IsZero() {
		return GetDriverRoutesQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetDriverRoutesQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRoutesQueryIsNotConstructed)
}

// Now returns the reference instant for route timing.
func (q GetDriverRoutesQuery) Now() time.Time {
	return q.now
}

// GetDriverRoutesQueryResponse is one busy driver and their active route.
// RouteMinutes is zero when the dispatch timestamp was never recorded.
type GetDriverRoutesQueryResponse struct {
	DriverID     string
	DriverName   string
	DriverPhone  string
	Vehicle      string
	OrderID      string
	Address      string
	CustomerName string
	RouteMinutes int
}
