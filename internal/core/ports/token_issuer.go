package ports

import "time"

// TokenIssuer mints short-lived session tokens after a gate unlock.
// Tokens are scoped to a single surface; a kitchen token does not open
// the logistics board.
type TokenIssuer interface {
	// Issue returns a signed token granting the surface for ttl.
	Issue(surface string, ttl time.Duration) (string, error)

	// Verify checks the token signature and expiry and returns the
	// surface it grants.
	Verify(token string) (string, error)
}
