// Package service declares the ports the usecases drive: hashing, tokens, payments, messaging,
// storage and realtime fan-out. Implementations live under internal/infra.
package service

// PasswordHasher hashes and verifies email-account passwords.
type PasswordHasher interface {
	// Hash enforces the password rules and returns a salted hash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with settings other than the current ones,
	// so a successful login can upgrade it.
	NeedsRehash(hash string) bool
}
