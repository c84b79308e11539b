package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/utils"
)

type fakeSessionStore struct {
	byHash  map[string]uint64
	touched map[string]time.Time
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byHash: map[string]uint64{}, touched: map[string]time.Time{}}
}

func (f *fakeSessionStore) Validate(ctx context.Context, tokenHash string) (uint64, error) {
	uid, ok := f.byHash[tokenHash]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return uid, nil
}

func (f *fakeSessionStore) Touch(ctx context.Context, tokenHash string, exp time.Time) error {
	f.touched[tokenHash] = exp
	return nil
}

func identityProbe(c echo.Context) error {
	uid, ok := UserID(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": uid})
}

func doRequest(t *testing.T, store *fakeSessionStore, cookie *http.Cookie, protected bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := Session(store, 30)(identityProbe)
	if protected {
		h = Session(store, 30)(RequireAuth(identityProbe))
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestSession_ValidCookieResolvesIdentity(t *testing.T) {
	store := newFakeSessionStore()
	raw := "raw-token-value"
	hash := utils.HashSessionRaw(raw)
	store.byHash[hash] = 42

	rec := doRequest(t, store, &http.Cookie{Name: CookieName, Value: raw}, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, store.touched, hash, "valid session slides its expiry")
}

func TestSession_NoCookieIsAnonymous(t *testing.T) {
	rec := doRequest(t, newFakeSessionStore(), nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestSession_UnknownTokenIsAnonymous(t *testing.T) {
	rec := doRequest(t, newFakeSessionStore(), &http.Cookie{Name: CookieName, Value: "bogus"}, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	rec := doRequest(t, newFakeSessionStore(), nil, true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	store := newFakeSessionStore()
	raw := "another-token"
	store.byHash[utils.HashSessionRaw(raw)] = 7

	rec := doRequest(t, store, &http.Cookie{Name: CookieName, Value: raw}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}
