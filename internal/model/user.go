package model

import "time"

// User represents an application user record as stored in the `users`
// table. The password is stored only as a salted scrypt hash in the form
// "<hash>.<salt>"; the plaintext never touches the database. Handlers
// define separate response types so the hash is never serialized to
// clients.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – scrypt hashed password ("<hash>.<salt>", hex encoded).
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password
	CreatedAt    time.Time // users.created_at
}

// Session models an entry in the `sessions` table. Each session belongs to
// a user and correlates an opaque client-held token with that user and an
// expiry. The plain token is not stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA-256 hex digest of the cookie token value.
//  ExpiresAt – expiration timestamp of the session.
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        uint64    // sessions.id
	UserID    uint64    // sessions.user_id
	TokenHash string    // sessions.token_hash
	ExpiresAt time.Time // sessions.expires_at
	CreatedAt time.Time // sessions.created_at
}
