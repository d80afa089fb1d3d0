package commands

import (
	"context"
	"errors"
	"time"

	"resto/internal/core/ports"
)

// SessionTTL is how long an unlocked station surface stays open before
// the secret must be presented again.
const SessionTTL = 8 * time.Hour

// UnlockStationCommandHandler checks a station's shared secret and mints
// a session token for the surface. No state is persisted: an unlock
// leaves no trail beyond the token it returns.
type UnlockStationCommandHandler struct {
	hashes   map[string]string
	verifier ports.CredentialVerifier
	issuer   ports.TokenIssuer
}

// NewUnlockStationCommandHandler creates an unlock handler. The hashes
// map surface name to the bcrypt hash of that surface's shared secret.
func NewUnlockStationCommandHandler(
	hashes map[string]string,
	verifier ports.CredentialVerifier,
	issuer ports.TokenIssuer,
) UnlockStationCommandHandler {
	return UnlockStationCommandHandler{
		hashes:   hashes,
		verifier: verifier,
		issuer:   issuer,
	}
}

// Handle verifies the secret and returns a signed session token scoped to
// the surface. A wrong secret surfaces only ErrCredentialMismatch.
func (h UnlockStationCommandHandler) Handle(_ context.Context, cmd UnlockStationCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	hash, ok := h.hashes[cmd.Surface()]
	if !ok {
		return "", ports.ErrCredentialMismatch
	}

	if err := h.verifier.Verify(hash, cmd.Secret()); err != nil {
		if errors.Is(err, ports.ErrCredentialMismatch) {
			return "", ports.ErrCredentialMismatch
		}
		return "", err
	}

	return h.issuer.Issue(cmd.Surface(), SessionTTL)
}
