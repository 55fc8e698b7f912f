package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes. 12 keeps a
// single hash around a quarter second on current hardware, which is the
// point: slow for an offline attacker, unnoticeable at login volume.
const DefaultCost = 12

// ErrMismatch reports that a password does not match its stored hash.
// Callers must not tell this apart from "no such user" in anything they
// put on the wire.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a bcrypt hash of the given plaintext. The salt is
// generated internally and encoded into the returned string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// hash. The comparison inside bcrypt is constant-time over the digest.
// Raw strings are never compared.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		// Not a mismatch: a corrupt or non-bcrypt hash in the store.
		return err
	}
	return nil
}
