// Package bcryptverify checks gate secrets against bcrypt hashes.
package bcryptverify

import (
	"golang.org/x/crypto/bcrypt"

	"resto/internal/core/ports"
)

// Verifier implements ports.CredentialVerifier with bcrypt comparison.
type Verifier struct{}

// NewVerifier creates a bcrypt credential verifier.
func NewVerifier() Verifier {
	return Verifier{}
}

// Verify compares secret against hash. A mismatch and a malformed hash
// both come back as ErrCredentialMismatch so callers leak nothing about
// which one happened.
func (Verifier) Verify(hash, secret string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ports.ErrCredentialMismatch
	}

	return nil
}

// HashSecret derives a bcrypt hash for a plain secret, used by seeding
// and by the hash helper command.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
