package auth

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
)

// ErrEmptySecret is returned when a Hasher is built without a secret.
var ErrEmptySecret = errors.New("hasher secret must not be empty")

// Hasher turns secrets (passwords, user ids) into fixed-length hex digests.
//
// The digest is SHA-512 over "<input>-<secret>". There is no per-record salt,
// so the strength of both stored passwords and session proofs rests entirely
// on the secrecy of the process-wide secret.
type Hasher struct {
	secret string
}

// NewHasher creates a Hasher bound to the given process-wide secret.
func NewHasher(secret string) (*Hasher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Hasher{secret: secret}, nil
}

// Hash returns the 128 character hex digest of input.
func (h *Hasher) Hash(input string) string {
	sum := sha512.Sum512([]byte(input + "-" + h.secret))
	return hex.EncodeToString(sum[:])
}
