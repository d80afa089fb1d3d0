package commands

import (
	"errors"
	"strings"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrUnlockStationCommandIsNotConstructed = errors.New(
	"unlock station command must be created via NewUnlockStationCommand",
)

// Surfaces that can be unlocked with the shared station secrets.
const (
	SurfaceKitchen   = "kitchen"
	SurfaceLogistics = "logistics"
)

// UnlockStationCommand opens a station surface with its shared secret.
//
//nolint:recvcheck //using for validation
type UnlockStationCommand struct {
	surface string
	secret  string

	guard guard.ConstructorGuard
}

// NewUnlockStationCommand creates an unlock command, validating input data.
// Surface names are matched case-insensitively.
func NewUnlockStationCommand(surface, secret string) (UnlockStationCommand, error) {
	surface = strings.ToLower(strings.TrimSpace(surface))
	if surface != SurfaceKitchen && surface != SurfaceLogistics {
		return UnlockStationCommand{}, errs.NewValueIsInvalidError("surface")
	}

	if secret == "" {
		return UnlockStationCommand{}, errs.NewValueIsRequiredError("secret")
	}

	return UnlockStationCommand{
		surface: surface,
		secret:  secret,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnlockStationCommand) Validate() error {
	return c.guard.Validate(ErrUnlockStationCommandIsNotConstructed)
}

func (c UnlockStationCommand) Surface() string {
	return c.surface
}

func (c UnlockStationCommand) Secret() string {
	return c.secret
}
