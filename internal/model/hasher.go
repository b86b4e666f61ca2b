package model

// PasswordHasher hashes and verifies password credentials.
type PasswordHasher interface {
	Hash(plain string) ([]byte, error)
	Verify(plain string, hash []byte) bool
}
