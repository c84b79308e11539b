package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/utils"
)

// CookieName is the name of the session cookie shared between the session
// middleware and the auth handlers that issue it.
const CookieName = "session_token"

const ctxUserID = "user_id"

// SessionStore is the slice of the session repository the middleware needs.
// It is satisfied by *repository.SessionRepo.
type SessionStore interface {
	Validate(ctx context.Context, tokenHash string) (uint64, error)
	Touch(ctx context.Context, tokenHash string, exp time.Time) error
}

// Session returns an Echo middleware that resolves the session cookie into
// an identity. When a valid, unexpired session exists the bound user id is
// stored in the request context under "user_id" and the session expiry is
// slid forward (ttlDays from now). Requests without a valid session pass
// through anonymously; rejecting them is RequireAuth's job so that public
// endpoints can still observe identity when present.
func Session(store SessionStore, ttlDays int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			hash := utils.HashSessionRaw(cookie.Value)

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			userID, err := store.Validate(ctx, hash)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					// expired or unknown token -> anonymous
					return next(c)
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
			}

			// Sliding expiry: each authenticated request renews the window.
			exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
			_ = store.Touch(ctx, hash, exp)

			c.Set(ctxUserID, userID)
			return next(c)
		}
	}
}

// RequireAuth rejects requests that did not resolve an identity with 401.
// It must run after Session.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserID(c); !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return next(c)
	}
}

// UserID returns the authenticated user's id for the request, or false when
// the request is anonymous. Handlers use this instead of reaching into the
// context keys directly.
func UserID(c echo.Context) (uint64, bool) {
	v, ok := c.Get(ctxUserID).(uint64)
	return v, ok
}
