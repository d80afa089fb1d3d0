package commands

import (
	"errors"
	"time"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrReleaseTablesCommandIsNotConstructed = errors.New(
	"release tables command must be created via NewReleaseTablesCommand",
)

// ReleaseTablesCommand sweeps settled table orders whose grace window has
// elapsed and closes them, freeing their tables for new seatings.
//
//nolint:recvcheck //using for validation
type ReleaseTablesCommand struct {
	now   time.Time
	grace time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseTablesCommand creates a sweep command for the given instant.
func NewReleaseTablesCommand(now time.Time, grace time.Duration) (ReleaseTablesCommand, error) {
	if now.IsZero() {
		return ReleaseTablesCommand{}, errs.NewValueIsRequiredError("now")
	}

	if grace < 0 {
		return ReleaseTablesCommand{}, errs.NewValueIsInvalidError("grace")
	}

	return ReleaseTablesCommand{
		now:   now,
		grace: grace,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseTablesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseTablesCommandIsNotConstructed)
}

func (c ReleaseTablesCommand) Now() time.Time {
	return c.now
}

func (c ReleaseTablesCommand) Grace() time.Duration {
	return c.grace
}
