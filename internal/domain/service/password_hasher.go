// Package service defines interfaces for domain collaborators implemented in the infrastructure layer.
package service

// PasswordHasher hashes account passwords and verifies login attempts against the stored hash.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
