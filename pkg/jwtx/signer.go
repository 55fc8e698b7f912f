package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// MinSecretLength is the smallest HMAC secret we accept. Anything shorter
// than the HS256 block makes brute-forcing the signature feasible.
const MinSecretLength = 16

// ErrWeakSecret reports a signing secret below MinSecretLength.
var ErrWeakSecret = errors.New("jwtx: signing secret too short")

// HS256Signer signs tokens with a symmetric HMAC-SHA256 secret. The same
// secret verifies the token, so it never leaves the server.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer from a raw secret.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HS256Signer{secret: secret}, nil
}

func (s *HS256Signer) Alg() string { return "HS256" }

// Sign produces the compact serialized token for the given claims.
func (s *HS256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
