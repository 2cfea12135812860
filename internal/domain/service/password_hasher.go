// Package service defines interfaces for domain-level capabilities that have
// infrastructure implementations.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the specific hashing algorithm (e.g., bcrypt) from the use case layer.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
