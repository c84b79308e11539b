package utils // package utils provides helper functions for session token creation and hashing

import (
	"crypto/rand"   // secure random number generation
	"crypto/sha256" // SHA-256 hashing for session tokens
	"encoding/hex"  // hex encoding functions
	"time"          // time utilities for generating expirations
)

// SessionToken represents an opaque token handed to the browser in a cookie.
// The Raw field contains the raw token string returned to the client. The
// Exp field records when it expires. In the database only a SHA-256 hash of
// the raw string is stored.
type SessionToken struct {
	Raw string    // raw token string set in the cookie
	Exp time.Time // UTC expiration time
}

// NewSessionToken returns a cryptographically secure random token and its
// expiration time. The ttlDays parameter controls how many days the session
// is valid before the user must log in again.
func NewSessionToken(ttlDays int) (SessionToken, error) {
	raw, err := randomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashSessionRaw returns the SHA-256 hash of the raw session token as a hex
// string. Storing only the hash prevents attackers from hijacking sessions
// with stolen database entries.
func HashSessionRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
