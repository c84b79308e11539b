package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/middleware"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/utils"
)

// AuthHandler bundles dependencies for the register/login/logout/me
// endpoints. SessionTTLDays controls both the session row expiry and the
// cookie MaxAge.
type AuthHandler struct {
	Users          UserStore
	Sessions       SessionStore
	SessionTTLDays int
}

func NewAuthHandler(u UserStore, s SessionStore, ttlDays int) *AuthHandler {
	return &AuthHandler{Users: u, Sessions: s, SessionTTLDays: ttlDays}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResp is the sanitized user representation; the password hash never
// leaves the server.
type userResp struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

func toUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Username: u.Username}
}

// Register creates a user and logs them in immediately, so the browser
// leaves with an active session cookie. A duplicate username is a 400 to
// match the client contract (not 409).
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	if err := h.startSession(ctx, c, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login after register failed"})
	}
	return c.JSON(http.StatusCreated, toUserResp(u))
}

// Login verifies the credentials and establishes a new session. Both an
// unknown username and a wrong password yield the same generic 401 so the
// response does not reveal which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(req.Password, u.PasswordHash) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := h.startSession(ctx, c, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// Logout deletes the server-side session and expires the cookie, so the
// same token resolves to anonymous from now on.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieName)
	if err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := h.Sessions.Delete(ctx, utils.HashSessionRaw(cookie.Value)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
	}
	clearSessionCookie(c)
	return c.NoContent(http.StatusOK)
}

// Me returns the current identity, or 401 when the request is anonymous.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// startSession issues a fresh opaque token, persists its hash, and sets the
// session cookie on the response.
func (h *AuthHandler) startSession(ctx context.Context, c echo.Context, userID uint64) error {
	tok, err := utils.NewSessionToken(h.SessionTTLDays)
	if err != nil {
		return err
	}
	if err := h.Sessions.Create(ctx, userID, utils.HashSessionRaw(tok.Raw), tok.Exp); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    tok.Raw,
		Path:     "/",
		Expires:  tok.Exp,
		MaxAge:   h.SessionTTLDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
