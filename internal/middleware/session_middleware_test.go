package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLEndaya/LeaseUp/internal/middleware"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

type stubResolver struct {
	known map[string]*models.Principal
	err   error
	seen  []string
}

func (s *stubResolver) RestorePrincipal(_ context.Context, sessionID string) (*models.Principal, error) {
	s.seen = append(s.seen, sessionID)
	if s.err != nil {
		return nil, s.err
	}
	return s.known[sessionID], nil
}

func token(t *testing.T, p *models.Principal, ttl time.Duration) string {
	t.Helper()
	tok, err := services.NewJWTService(secret, ttl).GenerateSessionToken(p)
	require.NoError(t, err)
	return tok
}

// serve runs h behind the session middleware and reports the principal the
// handler saw.
func serve(t *testing.T, resolver *stubResolver, cookie string, h http.Handler) (*httptest.ResponseRecorder, *models.Principal) {
	t.Helper()
	var seen *models.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.PrincipalFrom(r.Context())
		if h != nil {
			h.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	middleware.SessionMiddleware(secret, resolver, false)(inner).ServeHTTP(rec, req)
	return rec, seen
}

func clearsSession(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.SessionCookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestSessionMiddlewareRestoresPrincipal(t *testing.T) {
	tenant := &models.Principal{Role: models.RoleTenant, ID: 7, Username: "u7"}
	resolver := &stubResolver{known: map[string]*models.Principal{"tenant_7": tenant}}

	rec, seen := serve(t, resolver, token(t, tenant, time.Hour), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, tenant, seen)
	assert.Equal(t, []string{"tenant_7"}, resolver.seen)
	assert.False(t, clearsSession(rec))
}

func TestSessionMiddlewareAnonymousPaths(t *testing.T) {
	admin := &models.Principal{Role: models.RoleAdmin, ID: 1, Username: "admin"}

	t.Run("no cookie", func(t *testing.T) {
		resolver := &stubResolver{}
		rec, seen := serve(t, resolver, "", nil)
		assert.Nil(t, seen)
		assert.Empty(t, resolver.seen)
		assert.False(t, clearsSession(rec))
	})

	t.Run("garbage cookie is cleared", func(t *testing.T) {
		rec, seen := serve(t, &stubResolver{}, "not-a-jwt", nil)
		assert.Nil(t, seen)
		assert.True(t, clearsSession(rec))
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		rec, seen := serve(t, &stubResolver{}, token(t, admin, -time.Minute), nil)
		assert.Nil(t, seen)
		assert.True(t, clearsSession(rec))
	})

	t.Run("deleted account is cleared", func(t *testing.T) {
		resolver := &stubResolver{}
		rec, seen := serve(t, resolver, token(t, admin, time.Hour), nil)
		assert.Nil(t, seen)
		assert.Equal(t, []string{"user_1"}, resolver.seen)
		assert.True(t, clearsSession(rec))
	})

	t.Run("lookup failure is a 500", func(t *testing.T) {
		resolver := &stubResolver{err: utils.NewInternal("Database error", errors.New("down"))}
		rec, seen := serve(t, resolver, token(t, admin, time.Hour), nil)
		assert.Nil(t, seen)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestValidateSessionTokenRejectsForeignTokens(t *testing.T) {
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "someone-else",
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString(secret)
	require.NoError(t, err)
	_, err = middleware.ValidateSessionToken(signed, secret)
	assert.Error(t, err)

	good := token(t, &models.Principal{Role: models.RoleAdmin, ID: 1}, time.Hour)
	_, err = middleware.ValidateSessionToken(good, []byte("another-secret-another-secret-00"))
	assert.Error(t, err)

	sub, err := middleware.ValidateSessionToken(good, secret)
	require.NoError(t, err)
	assert.Equal(t, "user_1", sub)
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	gated := middleware.RequireAdmin("Admin access only.")(ok)

	run := func(p *models.Principal, jsonCaller bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/booking-requests/purge-rejected", nil)
		if jsonCaller {
			req.Header.Set("X-Requested-With", "XMLHttpRequest")
		}
		if p != nil {
			req = req.WithContext(middleware.WithPrincipal(req.Context(), p))
		}
		rec := httptest.NewRecorder()
		gated.ServeHTTP(rec, req)
		return rec
	}
	tenant := &models.Principal{Role: models.RoleTenant, ID: 1}
	admin := &models.Principal{Role: models.RoleAdmin, ID: 1}

	assert.Equal(t, http.StatusNoContent, run(admin, true).Code)
	assert.Equal(t, http.StatusForbidden, run(tenant, true).Code)
	assert.Equal(t, http.StatusUnauthorized, run(nil, true).Code)

	rec := run(tenant, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = run(nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login?next=")
}
