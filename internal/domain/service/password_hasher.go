// Package service declares the capabilities catrescue's use cases need from
// the outside world: tokens, password hashing, QR codes, image storage,
// event publishing and device push.
package service

// PasswordHasher hashes account passwords at registration and verifies them
// at login. Only the hash is ever stored on the user row.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
