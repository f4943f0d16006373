package auth

import (
	"crypto/subtle"
	"strconv"
)

const (
	// UserIDCookie carries the claimed user id.
	UserIDCookie = "userId"
	// ProofCookie carries the proof derived from the user id.
	ProofCookie = "loggedIn"
)

// Session is the client-held pair proving a prior successful login.
// Nothing is stored server side; the proof is re-derived on every request.
type Session struct {
	UserID string
	Proof  string
}

// Authenticator issues and verifies session proofs.
type Authenticator struct {
	hasher *Hasher
}

// NewAuthenticator creates an Authenticator on top of the given hasher.
func NewAuthenticator(hasher *Hasher) *Authenticator {
	return &Authenticator{hasher: hasher}
}

// Issue builds the session pair for a user id.
func (a *Authenticator) Issue(userID uint) Session {
	id := strconv.FormatUint(uint64(userID), 10)
	return Session{
		UserID: id,
		Proof:  a.hasher.Hash(id),
	}
}

// Authenticate reports whether proof was derived from userID.
// Missing values are simply unauthenticated.
func (a *Authenticator) Authenticate(userID, proof string) bool {
	if userID == "" || proof == "" {
		return false
	}
	expected := a.hasher.Hash(userID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(proof)) == 1
}

// UserID authenticates the pair and returns the numeric user id.
// It returns false when the pair does not verify or the id is not numeric.
func (a *Authenticator) UserID(userID, proof string) (uint, bool) {
	if !a.Authenticate(userID, proof) {
		return 0, false
	}
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
