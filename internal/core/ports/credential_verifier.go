package ports

import "errors"

// ErrCredentialMismatch is returned when a presented secret does not
// verify against the stored hash. Gate failures surface only this error:
// no lockout, no backoff, no attempt trail.
var ErrCredentialMismatch = errors.New("credential does not match")

// CredentialVerifier compares a presented secret against a stored hash.
// Gate checks go through this capability instead of literal string
// equality, so credentials stay externalized and hashed.
type CredentialVerifier interface {
	// Verify returns nil when secret matches hash, ErrCredentialMismatch
	// when it does not.
	Verify(hash, secret string) error
}
