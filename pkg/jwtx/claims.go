package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants for the session lifecycle. These are fixed
// contract values, not tunables derived from anything else.
const (
	// DefaultAccessTokenTTL is the lifetime of an access token. Short-lived
	// so a leaked bearer token goes stale quickly.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the lifetime of a refresh token. It bounds
	// how long a session can be resumed without re-entering credentials.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the minimal identity payload embedded in both access and refresh
// tokens. Keep this additive: anything beyond subject and username (and the
// registered claims) needs a good reason to ride along on every request.
// Password material must never appear here.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`
}

// NewClaims builds minimally-correct claims for a token with the given
// lifetime, anchored at now.
func NewClaims(subject, username string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
