package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/securebase/user-api/internal/core/domain"
)

const defaultBcryptCost = 12

// CredentialHasher wraps bcrypt with a configurable work factor. Each Hash
// call salts independently, so equal inputs produce distinct digests.
type CredentialHasher struct {
	cost int
}

// NewCredentialHasher returns a hasher with the given cost. Out-of-range
// costs fall back to the default of 12.
func NewCredentialHasher(cost int) *CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	return &CredentialHasher{cost: cost}
}

// Hash produces an opaque digest of plaintext. Empty input is rejected;
// the password policy normally runs first so this should not occur.
func (h *CredentialHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrInvalidPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest, using bcrypt's own
// constant-time comparison.
func (h *CredentialHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
