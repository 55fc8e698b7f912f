package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrExpired means the signature checked out but the clock is past exp.
	// Callers surface this differently from a forged or mangled token.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid means the token's nbf is in the future.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrInvalidToken covers everything else: malformed compact form, wrong
	// algorithm, bad signature, unparseable claims.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// HS256Verifier verifies tokens signed with a symmetric HMAC-SHA256 secret.
// Verification is a pure computation: no I/O, no mutation.
type HS256Verifier struct {
	secret []byte
	issuer string
}

// NewVerifierHS256 creates an HS256 verifier. If issuer is non-empty the
// token's iss claim must match it.
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

// Verify checks the signature and time claims of token. It distinguishes
// ErrExpired (valid signature, stale token) from ErrInvalidToken (anything
// structurally or cryptographically wrong).
func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		// The parser bundles expiry in with validation; tease it back out
		// because callers report expired and invalid tokens differently.
		// An expired claim only counts once the signature has been checked.
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Claims{}, ErrExpired
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return Claims{}, ErrNotYetValid
		}
		return Claims{}, ErrInvalidToken
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
