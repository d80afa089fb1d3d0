package queries

import (
	"errors"
	"time"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrGetDispatchBoardQueryIsNotConstructed = errors.New(
	"GetDispatchBoardQuery must be created via NewGetDispatchBoardQuery constructor",
)

// GetDispatchBoardQuery retrieves off-premises orders waiting at Ready,
// annotated with how long each has waited since intake. The urgency flag
// is presentation only: nothing escalates automatically.
//
//nolint:recvcheck //using for validation
type GetDispatchBoardQuery struct {
	now             time.Time
	urgentThreshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetDispatchBoardQuery creates a dispatch board query for the given
// instant. urgentThreshold marks orders waiting at least that long.
func NewGetDispatchBoardQuery(now time.Time, urgentThreshold time.Duration) (GetDispatchBoardQuery, error) {
	if now.IsZero() {
		return GetDispatchBoardQuery{}, errs.NewValueIsRequiredError("now")
	}

	if urgentThreshold <= 0 {
		return GetDispatchBoardQuery{}, errs.NewValueIsInvalidError("urgentThreshold")
	}

	return GetDispatchBoardQuery{
		now:             now,
		urgentThreshold: urgentThreshold,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchBoardQueryIsNotConstructed)
}

// Now returns the board's reference instant.
func (q GetDispatchBoardQuery) Now() time.Time {
	return q.now
}

// UrgentThreshold returns the wait beyond which an order is flagged.
func (q GetDispatchBoardQuery) UrgentThreshold() time.Duration {
	return q.urgentThreshold
}

// GetDispatchBoardQueryResponse is one dispatchable order on the board.
type GetDispatchBoardQueryResponse struct {
	ID           string
	CustomerName string
	Address      string
	Note         string
	TotalCents   int64
	WaitMinutes  int
	Urgent       bool
}
