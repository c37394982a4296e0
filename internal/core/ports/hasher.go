package ports

// PasswordHasher wraps an adaptive, salted, one-way hash. Hash returns a
// distinct digest on every call for the same input; Verify relies on the
// algorithm's own constant-time comparison.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
