package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/voclara/voclara/internal/common"
)

// PasswordHasher wraps bcrypt with a configurable cost factor. The same
// hasher serves account passwords and the parental passcode.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher clamps cost into bcrypt's supported range; zero or
// negative selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext. Two calls with the same
// input produce different hash strings; both verify. Empty input and input
// bcrypt cannot encode (over 72 bytes) fail with common.ErrPasswordEncoding.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", common.ErrPasswordEncoding
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", common.ErrPasswordEncoding
	}
	return string(hash), nil
}

// Verify recomputes with the salt embedded in hash and compares in constant
// time. A mismatch is (false, nil), not an error; a hash that is not a bcrypt
// encoding (corrupted storage) is common.ErrMalformedHash.
func (h *PasswordHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrMalformedHash
}
