package ports

// PasswordHasher hides the one-way hash behind an interface so services can
// be tested without paying the bcrypt cost.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
