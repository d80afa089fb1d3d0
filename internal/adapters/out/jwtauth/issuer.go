// Package jwtauth mints and checks the signed session tokens handed out
// after a station unlock.
package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenIsInvalid is returned for any token that fails signature,
// expiry, or claim checks.
var ErrTokenIsInvalid = errors.New("session token is invalid")

// Issuer implements ports.TokenIssuer with HMAC-signed JWTs. The surface
// travels in the subject claim.
type Issuer struct {
	signingKey []byte
	clock      func() time.Time
}

// NewIssuer creates a token issuer signing with the given key.
func NewIssuer(signingKey []byte) Issuer {
	return Issuer{
		signingKey: signingKey,
		clock:      time.Now,
	}
}

// Issue returns a signed token granting the surface for ttl.
func (i Issuer) Issue(surface string, ttl time.Duration) (string, error) {
	now := i.clock()

	claims := jwt.RegisteredClaims{
		Subject:   surface,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.signingKey)
}

// Verify checks the token signature and expiry and returns the surface
// it grants.
func (i Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) {
			return i.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", ErrTokenIsInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrTokenIsInvalid
	}

	return claims.Subject, nil
}
