package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SessionRepo persists/validates server-side sessions (single 'token_hash'
// column). Only the SHA-256 hash of the cookie token is stored.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a session row binding the token hash to a user.
func (r *SessionRepo) Create(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO sessions (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// Validate returns the bound userID if a non-expired session exists for the
// token hash. Missing and expired sessions both yield ErrNotFound so the
// caller treats them identically as anonymous.
func (r *SessionRepo) Validate(ctx context.Context, tokenHash string) (uint64, error) {
	var (
		userID    uint64
		expiresAt time.Time
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at FROM sessions WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if time.Now().UTC().After(expiresAt) {
		return 0, ErrNotFound
	}
	return userID, nil
}

// Touch slides the session expiry forward, implementing the "30 days from
// last use" lifetime. Touching an unknown hash is a no-op.
func (r *SessionRepo) Touch(ctx context.Context, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE sessions SET expires_at=? WHERE token_hash=?",
		exp, tokenHash)
	return err
}

// Delete removes the session so subsequent requests with the same token
// resolve to anonymous. Used by logout.
func (r *SessionRepo) Delete(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM sessions WHERE token_hash=?", tokenHash)
	return err
}

// DeleteExpired purges sessions past their expiry. Expired rows are already
// invisible to Validate; this just keeps the table from growing forever.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM sessions WHERE expires_at < UTC_TIMESTAMP()")
	return err
}
