// Package hash provides helpers for hashing and verifying secrets.
//
// Passwords are stored only as hashes; login verifies user input by
// comparing the plaintext against the stored hash.
package hash

// Hash hashes plaintext secrets and verifies plaintext against a stored hash.
type Hash interface {
	Hash(plaintext string) ([]byte, error)
	Verify(hashed, plaintext string) bool
}
